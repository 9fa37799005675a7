package core

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/jinzhu/copier"
	"golang.org/x/exp/slices"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// SettingKind is the type of value accepted by a setting.
type SettingKind int

const (
	SettingBoolean SettingKind = iota + 1
	SettingString
	SettingNumber
	SettingEnum
)

func (k SettingKind) String() string {
	switch k {
	case SettingBoolean:
		return "boolean"
	case SettingString:
		return "string"
	case SettingNumber:
		return "number"
	case SettingEnum:
		return "enum"
	}
	return "unknown"
}

// SettingValue holds a value of one of the setting kinds.
// Only the field matching Kind is meaningful.
type SettingValue struct {
	Kind   SettingKind
	Bool   bool
	Text   string
	Number float64
}

func BoolValue(b bool) SettingValue { return SettingValue{Kind: SettingBoolean, Bool: b} }
func StringValue(s string) SettingValue { return SettingValue{Kind: SettingString, Text: s} }
func NumberValue(n float64) SettingValue { return SettingValue{Kind: SettingNumber, Number: n} }
func EnumValue(option string) SettingValue { return SettingValue{Kind: SettingEnum, Text: option} }

func (v SettingValue) String() string {
	switch v.Kind {
	case SettingBoolean:
		return strconv.FormatBool(v.Bool)
	case SettingNumber:
		return strconv.FormatFloat(v.Number, 'f', -1, 64)
	}
	return v.Text
}

type SettingOption struct {
	Value string
	Label string
}

// SettingDefinition describes a single user-editable setting.
type SettingDefinition struct {
	Key      string
	Label    string
	Category string
	Kind     SettingKind
	Default  SettingValue

	// Number constraints
	Min   float64
	Max   float64
	Step  float64
	Units string

	// Enum choices
	Options []SettingOption

	// String constraint
	Pattern *regexp.Regexp

	get func(s *Settings) SettingValue
	set func(s *Settings, v SettingValue)
}

// Parse converts a raw value into a value valid for this setting.
func (d *SettingDefinition) Parse(raw string) (SettingValue, error) {
	raw = strings.TrimSpace(raw)
	switch d.Kind {
	case SettingBoolean:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return SettingValue{}, fmt.Errorf("%w: %s expects true or false, got %q", ErrInvalidSettingValue, d.Key, raw)
		}
		return BoolValue(b), nil
	case SettingNumber:
		n, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
			return SettingValue{}, fmt.Errorf("%w: %s expects a number, got %q", ErrInvalidSettingValue, d.Key, raw)
		}
		if n < d.Min || n > d.Max {
			return SettingValue{}, fmt.Errorf("%w: %s must be between %v and %v, got %v", ErrInvalidSettingValue, d.Key, d.Min, d.Max, n)
		}
		if d.Step > 0 {
			steps := (n - d.Min) / d.Step
			if math.Abs(steps-math.Round(steps)) > 1e-6 {
				return SettingValue{}, fmt.Errorf("%w: %s must be a multiple of %v, got %v", ErrInvalidSettingValue, d.Key, d.Step, n)
			}
		}
		return NumberValue(n), nil
	case SettingEnum:
		for _, option := range d.Options {
			if strings.EqualFold(option.Value, raw) {
				return EnumValue(option.Value), nil
			}
		}
		return SettingValue{}, fmt.Errorf("%w: %s expects one of %s, got %q", ErrInvalidSettingValue, d.Key, strings.Join(d.OptionValues(), ", "), raw)
	case SettingString:
		if d.Pattern != nil && !d.Pattern.MatchString(raw) {
			return SettingValue{}, fmt.Errorf("%w: %s must match %s, got %q", ErrInvalidSettingValue, d.Key, d.Pattern, raw)
		}
		return StringValue(raw), nil
	}
	return SettingValue{}, fmt.Errorf("%w: %s has unsupported kind %s", ErrInvalidSettingValue, d.Key, d.Kind)
}

// OptionValues returns the accepted values of an enum setting.
func (d *SettingDefinition) OptionValues() []string {
	var values []string
	for _, option := range d.Options {
		values = append(values, option.Value)
	}
	return values
}

// Read extracts the value of this setting.
func (d *SettingDefinition) Read(s *Settings) SettingValue {
	return d.get(s)
}

// Apply overrides the value of this setting. Values of another kind are ignored.
func (d *SettingDefinition) Apply(s *Settings, v SettingValue) bool {
	if v.Kind != d.Kind {
		return false
	}
	d.set(s, v)
	return true
}

// Settings configures how slideshows are presented.
type Settings struct {
	Appearance AppearanceSettings `yaml:"appearance" json:"appearance"`
	Navigation NavigationSettings `yaml:"navigation" json:"navigation"`
	Style      StyleSettings      `yaml:"style" json:"style"`
}

type AppearanceSettings struct {
	ShowProgressBar  bool `yaml:"showProgressBar" json:"showProgressBar"`
	ShowSlideCounter bool `yaml:"showSlideCounter" json:"showSlideCounter"`
	ShowSlideNumbers bool `yaml:"showSlideNumbers" json:"showSlideNumbers"`
}

type NavigationSettings struct {
	ShowNavigationHint bool `yaml:"showNavigationHint" json:"showNavigationHint"`
	AutoHideControls   bool `yaml:"autoHideControls" json:"autoHideControls"`
}

type StyleSettings struct {
	TextColor       string  `yaml:"textColor" json:"textColor"`
	BackgroundColor string  `yaml:"backgroundColor" json:"backgroundColor"`
	FontFamily      string  `yaml:"fontFamily" json:"fontFamily"`
	FontSize        float64 `yaml:"fontSize" json:"fontSize"` // in vw
	LineHeight      float64 `yaml:"lineHeight" json:"lineHeight"`
	TextAlign       string  `yaml:"textAlign" json:"textAlign"`
}

var reColor = regexp.MustCompile(`^#([0-9a-fA-F]{3}|[0-9a-fA-F]{6})$`)

// SettingCategories lists the categories in display order.
var SettingCategories = []string{"appearance", "style", "navigation"}

// SettingDefinitions is the closed schema of all settings.
var SettingDefinitions = []*SettingDefinition{
	{
		Key:      "appearance.showProgressBar",
		Label:    "Show Progress Bar",
		Category: "appearance",
		Kind:     SettingBoolean,
		Default:  BoolValue(false),
		get:      func(s *Settings) SettingValue { return BoolValue(s.Appearance.ShowProgressBar) },
		set:      func(s *Settings, v SettingValue) { s.Appearance.ShowProgressBar = v.Bool },
	},
	{
		Key:      "appearance.showSlideCounter",
		Label:    "Show Slide Counter",
		Category: "appearance",
		Kind:     SettingBoolean,
		Default:  BoolValue(true),
		get:      func(s *Settings) SettingValue { return BoolValue(s.Appearance.ShowSlideCounter) },
		set:      func(s *Settings, v SettingValue) { s.Appearance.ShowSlideCounter = v.Bool },
	},
	{
		Key:      "appearance.showSlideNumbers",
		Label:    "Show Slide Numbers",
		Category: "appearance",
		Kind:     SettingBoolean,
		Default:  BoolValue(true),
		get:      func(s *Settings) SettingValue { return BoolValue(s.Appearance.ShowSlideNumbers) },
		set:      func(s *Settings, v SettingValue) { s.Appearance.ShowSlideNumbers = v.Bool },
	},
	{
		Key:      "navigation.showNavigationHint",
		Label:    "Show Navigation Hint",
		Category: "navigation",
		Kind:     SettingBoolean,
		Default:  BoolValue(true),
		get:      func(s *Settings) SettingValue { return BoolValue(s.Navigation.ShowNavigationHint) },
		set:      func(s *Settings, v SettingValue) { s.Navigation.ShowNavigationHint = v.Bool },
	},
	{
		Key:      "navigation.autoHideControls",
		Label:    "Auto-hide Controls",
		Category: "navigation",
		Kind:     SettingBoolean,
		Default:  BoolValue(false),
		get:      func(s *Settings) SettingValue { return BoolValue(s.Navigation.AutoHideControls) },
		set:      func(s *Settings, v SettingValue) { s.Navigation.AutoHideControls = v.Bool },
	},
	{
		Key:      "style.textColor",
		Label:    "Text Color",
		Category: "style",
		Kind:     SettingString,
		Default:  StringValue("#ffffff"),
		Pattern:  reColor,
		get:      func(s *Settings) SettingValue { return StringValue(s.Style.TextColor) },
		set:      func(s *Settings, v SettingValue) { s.Style.TextColor = v.Text },
	},
	{
		Key:      "style.backgroundColor",
		Label:    "Background Color",
		Category: "style",
		Kind:     SettingString,
		Default:  StringValue("#000000"),
		Pattern:  reColor,
		get:      func(s *Settings) SettingValue { return StringValue(s.Style.BackgroundColor) },
		set:      func(s *Settings, v SettingValue) { s.Style.BackgroundColor = v.Text },
	},
	{
		Key:      "style.fontFamily",
		Label:    "Font Family",
		Category: "style",
		Kind:     SettingEnum,
		Default:  EnumValue("system-ui, sans-serif"),
		Options: []SettingOption{
			{Value: "system-ui, sans-serif", Label: "System UI"},
			{Value: "serif", Label: "Serif"},
			{Value: "monospace", Label: "Monospace"},
		},
		get: func(s *Settings) SettingValue { return EnumValue(s.Style.FontFamily) },
		set: func(s *Settings, v SettingValue) { s.Style.FontFamily = v.Text },
	},
	{
		Key:      "style.fontSize",
		Label:    "Font Size",
		Category: "style",
		Kind:     SettingNumber,
		Default:  NumberValue(5),
		Min:      1,
		Max:      10,
		Step:     0.1,
		Units:    "vw",
		get:      func(s *Settings) SettingValue { return NumberValue(s.Style.FontSize) },
		set:      func(s *Settings, v SettingValue) { s.Style.FontSize = v.Number },
	},
	{
		Key:      "style.lineHeight",
		Label:    "Line Height",
		Category: "style",
		Kind:     SettingNumber,
		Default:  NumberValue(1.6),
		Min:      1,
		Max:      3,
		Step:     0.1,
		get:      func(s *Settings) SettingValue { return NumberValue(s.Style.LineHeight) },
		set:      func(s *Settings, v SettingValue) { s.Style.LineHeight = v.Number },
	},
	{
		Key:      "style.textAlign",
		Label:    "Text Alignment",
		Category: "style",
		Kind:     SettingEnum,
		Default:  EnumValue("center"),
		Options: []SettingOption{
			{Value: "left", Label: "Align left"},
			{Value: "center", Label: "Align center"},
			{Value: "right", Label: "Align right"},
			{Value: "justify", Label: "Align justify"},
		},
		get: func(s *Settings) SettingValue { return EnumValue(s.Style.TextAlign) },
		set: func(s *Settings, v SettingValue) { s.Style.TextAlign = v.Text },
	},
}

// defaultSettings is built once from the schema.
var defaultSettings = func() Settings {
	var s Settings
	for _, definition := range SettingDefinitions {
		definition.Apply(&s, definition.Default)
	}
	return s
}()

// DefaultSettings returns a copy of the default settings.
func DefaultSettings() Settings {
	var s Settings
	if err := copier.CopyWithOption(&s, &defaultSettings, copier.Option{DeepCopy: true}); err != nil {
		// Must not happen with a struct of plain values
		CurrentLogger().Fatalf("Unable to copy default settings: %v", err)
	}
	return s
}

// LookupSetting returns the definition of a setting.
func LookupSetting(key string) (*SettingDefinition, error) {
	for _, definition := range SettingDefinitions {
		if definition.Key == key {
			return definition, nil
		}
	}
	return nil, fmt.Errorf("%w %q", ErrUnknownSetting, key)
}

// SettingsInCategory returns the definitions of a category in schema order.
func SettingsInCategory(category string) []*SettingDefinition {
	var result []*SettingDefinition
	for _, definition := range SettingDefinitions {
		if definition.Category == category {
			result = append(result, definition)
		}
	}
	return result
}

// CategoryTitle returns the display name of a category.
func CategoryTitle(category string) string {
	return cases.Title(language.English).String(category)
}

// MergeSettings applies stored raw values over the defaults.
// Unknown keys and invalid values are ignored.
func MergeSettings(stored map[string]string) Settings {
	settings := DefaultSettings()
	for key, raw := range stored {
		definition, err := LookupSetting(key)
		if err != nil {
			CurrentLogger().Debugf("Ignoring unknown setting %q", key)
			continue
		}
		value, err := definition.Parse(raw)
		if err != nil {
			CurrentLogger().Warnf("Ignoring stored setting: %v", err)
			continue
		}
		definition.Apply(&settings, value)
	}
	return settings
}

/* Database Management */

// StoredSettings returns the raw values overriding the defaults.
func (r *Repository) StoredSettings() (map[string]string, error) {
	rows, err := CurrentDB().Client().Query(`SELECT key, value FROM setting;`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result := make(map[string]string)
	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return nil, err
		}
		result[key] = value
	}
	return result, rows.Err()
}

// LoadSettings returns the default settings overridden by the stored values.
func (r *Repository) LoadSettings() (Settings, error) {
	stored, err := r.StoredSettings()
	if err != nil {
		return Settings{}, err
	}
	return MergeSettings(stored), nil
}

// SetSetting validates and persists a single setting.
func (r *Repository) SetSetting(key, raw string) (SettingValue, error) {
	definition, err := LookupSetting(key)
	if err != nil {
		return SettingValue{}, err
	}
	value, err := definition.Parse(raw)
	if err != nil {
		return SettingValue{}, err
	}
	_, err = CurrentDB().Client().Exec(`
		INSERT INTO setting(key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value;`, key, value.String())
	if err != nil {
		return SettingValue{}, err
	}
	CurrentLogger().Infof("Set %s = %s", key, value)
	return value, nil
}

// ResetSettings restores the default value of the given settings, or all settings when none are given.
func (r *Repository) ResetSettings(keys ...string) error {
	if len(keys) == 0 {
		_, err := CurrentDB().Client().Exec(`DELETE FROM setting;`)
		return err
	}
	for _, key := range keys {
		if _, err := LookupSetting(key); err != nil {
			return err
		}
	}
	return CurrentDB().WithTransaction(func() error {
		for _, key := range slices.Compact(slices.Clone(keys)) {
			if _, err := CurrentDB().Client().Exec(`DELETE FROM setting WHERE key = ?;`, key); err != nil {
				return err
			}
		}
		return nil
	})
}
