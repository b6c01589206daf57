// Package config loads application configuration from environment
// variables and an optional .env file.
//
// Each core and feature package owns its partial Config struct; this
// package composes them and binds defaults from struct tags through
// Viper. Environment variables map onto nested keys by underscore, e.g.
// MEMORY_PROCESS_NAME sets memory.process_name.
//
// Structured defaults that have no sensible tag form (entry layouts,
// scoring weights, the cooldown suppression list) are applied by the
// owning package's Normalize after unmarshalling.
package config
