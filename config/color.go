package config

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

// Color is an NRGBA color written as "#rrggbb" or "#rrggbbaa".
type Color struct {
	color.NRGBA
}

func (c *Color) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind != yaml.ScalarNode {
		return fmt.Errorf("color must be a string")
	}
	parsed, err := ParseHex(value.Value)
	if err != nil {
		return err
	}
	c.NRGBA = parsed
	return nil
}

func (c Color) MarshalYAML() (any, error) {
	return c.Hex(), nil
}

func (c Color) Hex() string {
	if c.A == 255 {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseHex parses "#rrggbb" or "#rrggbbaa". The leading '#' is optional.
func ParseHex(v string) (color.NRGBA, error) {
	s := strings.TrimPrefix(v, "#")
	if len(s) != 6 && len(s) != 8 {
		return color.NRGBA{}, fmt.Errorf("invalid color format: %s", v)
	}

	parse := func(start int) (uint8, error) {
		n, err := strconv.ParseUint(s[start:start+2], 16, 8)
		return uint8(n), err
	}

	var out [4]uint8
	out[3] = 255
	for i := 0; i < len(s)/2; i++ {
		b, err := parse(i * 2)
		if err != nil {
			return color.NRGBA{}, fmt.Errorf("invalid color %s: %w", v, err)
		}
		out[i] = b
	}
	return color.NRGBA{R: out[0], G: out[1], B: out[2], A: out[3]}, nil
}
