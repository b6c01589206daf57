package main

import "github.com/misternay/Poe2-SkillEye/cmd"

func main() {
	cmd.Execute()
}
