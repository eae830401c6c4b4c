package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// SetupViper builds the viper instance backing RuntimeConfig: defaults,
// CATAPULT_* environment variables, an optional config.local.json under the
// data dir, and every flag of the invoking command.
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	v.SetConfigName("config.local")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, ".catapult"))

	v.SetEnvPrefix("CATAPULT")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	v.SetDefault("project_root", projectRoot)
	v.SetDefault("build_dir", "build")
	v.SetDefault("data_dir", ".catapult")
	v.SetDefault("timeout", "5m")
	v.SetDefault("non_interactive", false)

	// Config file is optional
	_ = v.ReadInConfig()

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		key := strings.ReplaceAll(f.Name, "-", "_")
		if err := v.BindPFlag(key, f); err != nil {
			panic(err)
		}
	})

	return v
}

// Provider resolves the RuntimeConfig from a configured viper instance.
func Provider(v *viper.Viper) (*RuntimeConfig, error) {
	root, err := resolveRoot(v.GetString("project_root"))
	if err != nil {
		return nil, err
	}

	cfg := &RuntimeConfig{
		ProjectRoot:        root,
		BuildDir:           v.GetString("build_dir"),
		DataDir:            v.GetString("data_dir"),
		PrivateKeyOverride: v.GetString("private_key"),
		NonInteractive:     v.GetBool("non_interactive"),
		JSON:               v.GetBool("json"),
		Timeout:            v.GetDuration("timeout"),
	}

	if !filepath.IsAbs(cfg.BuildDir) {
		cfg.BuildDir = filepath.Join(root, cfg.BuildDir)
	}
	if !filepath.IsAbs(cfg.DataDir) {
		cfg.DataDir = filepath.Join(root, cfg.DataDir)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return cfg, nil
}
