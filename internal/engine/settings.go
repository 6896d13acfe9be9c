package engine

import (
	"errors"
	"fmt"
	"reflect"
	"slices"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/go-viper/mapstructure/v2"
)

func (s *Service) validateSettings(st *Settings) error {
	err := s.validate.Struct(st)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return InvalidArgumentError{
			Field:  settingJSONName(fe.StructField()),
			Reason: fmt.Sprintf("failed %q check (got %v)", fe.Tag(), fe.Value()),
		}
	}
	return InvalidArgumentError{Field: "settings", Reason: err.Error()}
}

// SettingKeys lists the settings fields by their stored name.
func SettingKeys() []string {
	t := reflect.TypeOf(Settings{})
	keys := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		name, _, _ := strings.Cut(t.Field(i).Tag.Get("json"), ",")
		if name != "" && name != "-" {
			keys = append(keys, name)
		}
	}
	sort.Strings(keys)
	return keys
}

// SettingsMap returns st keyed by stored field name.
func SettingsMap(st Settings) (map[string]any, error) {
	out := map[string]any{}
	if err := decodeSettings(st, &out); err != nil {
		return nil, fmt.Errorf("settings to map: %w", err)
	}
	return out, nil
}

// ApplySetting returns st with one field, named by its stored key, set from a
// string. Boolean fields accept anything strconv.ParseBool does.
// The result is not validated; SaveSettings does that.
func ApplySetting(st Settings, key, value string) (Settings, error) {
	if !slices.Contains(SettingKeys(), key) {
		return st, InvalidArgumentError{Field: "setting", Reason: fmt.Sprintf("unknown key %q (known: %s)", key, strings.Join(SettingKeys(), ", "))}
	}

	out := st
	if err := decodeSettings(map[string]any{key: strings.TrimSpace(value)}, &out); err != nil {
		return st, InvalidArgumentError{Field: key, Reason: fmt.Sprintf("cannot use %q: %v", value, err)}
	}
	return out, nil
}

func decodeSettings(in, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "json",
		WeaklyTypedInput: true,
		ErrorUnused:      true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(in)
}

func settingJSONName(field string) string {
	if field == "" {
		return field
	}
	return strings.ToLower(field[:1]) + field[1:]
}
