// Copyright (c) 2024, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package config

import (
	"fmt"
	"reflect"
	"strconv"

	"cogentcore.org/triangle/base/errors"
)

// SetFromDefaults sets the values of the given config object
// from `default:` struct field tag values, recursing into nested
// structs. Errors are automatically logged in addition to being returned.
func SetFromDefaults(cfg any) error {
	return errors.Log(setFromDefaultTags(reflect.ValueOf(cfg)))
}

func setFromDefaultTags(ov reflect.Value) error {
	if ov.Kind() != reflect.Pointer || ov.IsNil() {
		return nil
	}
	val := ov.Elem()
	if val.Kind() != reflect.Struct {
		return nil
	}
	typ := val.Type()
	var errs []error
	for i := 0; i < typ.NumField(); i++ {
		f := typ.Field(i)
		if !f.IsExported() {
			continue
		}
		fv := val.Field(i)
		def, ok := f.Tag.Lookup("default")
		if f.Type.Kind() == reflect.Struct && !ok {
			errs = append(errs, setFromDefaultTags(fv.Addr()))
			continue
		}
		if !ok || def == "" {
			continue
		}
		if err := setString(fv, def); err != nil {
			errs = append(errs, fmt.Errorf("config.SetFromDefaults: field %s of %s from %q: %w", f.Name, typ.Name(), def, err))
		}
	}
	return errors.Join(errs...)
}

// setString sets a basic kind value from its string form.
func setString(v reflect.Value, s string) error {
	switch v.Kind() {
	case reflect.String:
		v.SetString(s)
	case reflect.Bool:
		b, err := strconv.ParseBool(s)
		if err != nil {
			return err
		}
		v.SetBool(b)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(s, 0, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetUint(n)
	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(s, v.Type().Bits())
		if err != nil {
			return err
		}
		v.SetFloat(f)
	default:
		return fmt.Errorf("unsupported kind %v", v.Kind())
	}
	return nil
}
