package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/misternay/Poe2-SkillEye/feature/icons"
)

// TextureSystem is a mock implementation of icons.TextureSystem
type TextureSystem struct {
	mock.Mock
}

func (m *TextureSystem) Acquire(path string) (icons.Texture, error) {
	args := m.Called(path)
	return args.Get(0).(icons.Texture), args.Error(1)
}

func (m *TextureSystem) Release(path string) bool {
	args := m.Called(path)
	return args.Bool(0)
}
