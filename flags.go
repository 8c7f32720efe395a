package main

import (
	"fmt"
	"path/filepath"
	"slices"
	"strconv"
	"strings"
	"unicode"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"quatrot/internal/sweep"
	"quatrot/quaternion"
)

const envPrefix = "QUATROT"

func NewCommand() *cobra.Command {
	v := viper.New()
	def := sweep.DefaultConfig()

	cmd := &cobra.Command{
		Use:   "quatrot",
		Short: "Rotate a vector around an axis using quaternions",
		Long: `Rotate a vector around an axis using quaternions.

For every angle in [--from, --to) stepping by --step degrees, a unit rotation
quaternion is built from --axis and applied to --vector, and the rotated
vector is printed.

Every flag may also be set through the environment (QUATROT_AXIS,
QUATROT_CROSS_CHECK, ...) or a config file given with --config.
Flags take precedence over the environment, which takes precedence over the
config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig(v)
			if err != nil {
				return err
			}
			cmd.SilenceUsage = true
			return run(cmd, cfg)
		},
	}

	fs := cmd.Flags()
	fs.String("axis", formatVec3(def.Axis), "Rotation axis as \"x,y,z\". It is normalized and must not be zero")
	fs.String("vector", formatVec3(def.Vector), "Vector to rotate as \"x,y,z\"")
	fs.Int("from", def.From, "First angle in degrees")
	fs.Int("to", def.To, "End of the angle range in degrees (exclusive)")
	fs.Int("step", def.Step, "Angle increment in degrees. Must be greater than 0")
	fs.Bool("cross-check", def.CrossCheck, "Compare every rotation against a single-precision axis-angle rotation")
	fs.Float64("tolerance", def.Tolerance, "Largest deviation accepted by --cross-check")
	fs.String("config", "", "Path to a config file ("+strings.Join(viper.SupportedExts, ", ")+")")
	bindFlags(v, fs)

	return cmd
}

func bindFlags(v *viper.Viper, fs *pflag.FlagSet) {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	if err := v.BindPFlags(fs); err != nil {
		panic(err)
	}
}

// loadConfig resolves the sweep configuration from flags, environment and
// the optional config file.
func loadConfig(v *viper.Viper) (sweep.Config, error) {
	if path := v.GetString("config"); path != "" {
		if err := readConfigFile(v, path); err != nil {
			return sweep.Config{}, err
		}
	}

	axis, err := parseVec3(strings.Join(v.GetStringSlice("axis"), " "))
	if err != nil {
		return sweep.Config{}, fmt.Errorf("invalid axis: %w", err)
	}
	vector, err := parseVec3(strings.Join(v.GetStringSlice("vector"), " "))
	if err != nil {
		return sweep.Config{}, fmt.Errorf("invalid vector: %w", err)
	}

	cfg := sweep.Config{
		Axis:       axis,
		Vector:     vector,
		From:       v.GetInt("from"),
		To:         v.GetInt("to"),
		Step:       v.GetInt("step"),
		CrossCheck: v.GetBool("cross-check"),
		Tolerance:  v.GetFloat64("tolerance"),
	}
	if err := cfg.Validate(); err != nil {
		return sweep.Config{}, err
	}
	return cfg, nil
}

func readConfigFile(v *viper.Viper, path string) error {
	if ok, err := exists(path); !ok {
		return fmt.Errorf("config file not found: %w", err)
	}
	ext := strings.TrimPrefix(filepath.Ext(path), ".")
	if !slices.Contains(viper.SupportedExts, ext) {
		return fmt.Errorf("config file %s: unsupported extension %q", path, ext)
	}
	v.SetConfigFile(path)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("reading config file %s: %w", path, err)
	}
	return nil
}

// parseVec3 parses three numbers separated by commas and/or spaces.
func parseVec3(s string) (quaternion.V3, error) {
	operands := strings.FieldsFunc(s, func(r rune) bool {
		return r == ',' || unicode.IsSpace(r)
	})
	if len(operands) != 3 {
		return quaternion.V3{}, fmt.Errorf("expected \"x,y,z\", got %q", s)
	}
	var v quaternion.V3
	for i, op := range operands {
		f, err := strconv.ParseFloat(op, 64)
		if err != nil {
			return quaternion.V3{}, fmt.Errorf("component %d: %w", i, err)
		}
		v[i] = f
	}
	return v, nil
}

func formatVec3(v quaternion.V3) string {
	return fmt.Sprintf("%v,%v,%v", v[0], v[1], v[2])
}
