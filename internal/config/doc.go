// Package config loads TASKBOARD_* settings with viper and validates them.
package config
