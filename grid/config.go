package grid

import (
	"errors"
	"fmt"

	geom "github.com/peterstace/simplefeatures/geom"
	"github.com/spf13/viper"

	"github.com/austencloud/tka-studio-sub005/compass"
)

// LoadTable builds a Table from the baked-in defaults, then applies any
// overrides found in a grid.json file inside configDir. A missing file is
// not an error; a malformed file is. Override keys are of the form
// "<mode>.<location>.x" / "<mode>.<location>.y", e.g.:
//
//	{"diamond": {"n": {"x": 475, "y": 330}}}
//
// Points not mentioned in the file keep their default coordinates.
func LoadTable(configDir string) (*Table, error) {
	t := NewTable()

	v := viper.New()
	v.SetConfigName("grid")
	v.SetConfigType("json")
	v.AddConfigPath(configDir)

	for mode, pts := range t.points {
		for loc, xy := range pts {
			v.SetDefault(overrideKey(mode, loc, "x"), xy.X)
			v.SetDefault(overrideKey(mode, loc, "y"), xy.Y)
		}
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("grid: reading override config: %w", err)
		}
		// No override file: defaults stand.
		return t, nil
	}

	for mode, pts := range t.points {
		for loc := range pts {
			pts[loc] = geom.XY{
				X: v.GetFloat64(overrideKey(mode, loc, "x")),
				Y: v.GetFloat64(overrideKey(mode, loc, "y")),
			}
		}
	}

	return t, nil
}

func overrideKey(mode Mode, loc compass.Location, axis string) string {
	return fmt.Sprintf("%s.%s.%s", mode, loc, axis)
}
