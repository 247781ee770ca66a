package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"strconv"

	"github.com/OhadRubin/workspace-colors/constant"
	"github.com/OhadRubin/workspace-colors/derive"
	"github.com/OhadRubin/workspace-colors/key"
	levenshtein "github.com/ka-weihe/fast-levenshtein"
	"github.com/samber/lo"
	"github.com/spf13/viper"
)

// UnknownKeyError is returned for keys missing from Default.
type UnknownKeyError struct {
	Key     string
	Closest string
}

func (e *UnknownKeyError) Error() string {
	return fmt.Sprintf("unknown key %s, did you mean %s?", e.Key, e.Closest)
}

// Lookup returns the registered field for k.
func Lookup(k string) (Field, error) {
	if field, ok := Default[k]; ok {
		return field, nil
	}

	closest := lo.MinBy(lo.Keys(Default), func(a, b string) bool {
		return levenshtein.Distance(k, a) < levenshtein.Distance(k, b)
	})
	return Field{}, &UnknownKeyError{Key: k, Closest: closest}
}

// Parse converts command line values into the type of the field's default.
func (f *Field) Parse(values []string) (any, error) {
	if len(values) == 0 {
		return nil, errors.New("no value given")
	}

	raw := values[0]
	switch f.Value.(type) {
	case string:
		if f.Key == key.DeriveVariant {
			if _, err := derive.ParseVariant(raw); err != nil {
				return nil, err
			}
		}
		return raw, nil
	case int:
		n, err := strconv.Atoi(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid integer value: %s", raw)
		}
		return n, nil
	case float64:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid number value: %s", raw)
		}
		return n, nil
	case bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return nil, fmt.Errorf("invalid boolean value: %s", raw)
		}
		return b, nil
	case []string:
		return values, nil
	default:
		return nil, fmt.Errorf("unsupported type %s for %s", f.typeName(), f.Key)
	}
}

// File is the path of the TOML config file.
func File(dir string) string {
	return filepath.Join(dir, constant.App+".toml")
}

// Write persists the in-memory configuration, creating the file when needed.
func Write() error {
	err := viper.WriteConfig()

	var notFound viper.ConfigFileNotFoundError
	if errors.As(err, &notFound) {
		return viper.SafeWriteConfig()
	}
	return err
}
