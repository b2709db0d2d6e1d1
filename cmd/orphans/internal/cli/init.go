package cli

import (
	"fmt"
	"io"

	"github.com/lerenn/orphans/configs"
	"github.com/lerenn/orphans/pkg/config"
	"github.com/lerenn/orphans/pkg/dependencies"
)

// Init writes the default configuration file.
// An existing file is only replaced after confirmation, unless force is set.
func Init(deps *dependencies.Dependencies, force bool, w io.Writer) error {
	if err := deps.Validate(); err != nil {
		return err
	}

	path, err := deps.FS.ExpandPath(deps.Config.GetConfigPath())
	if err != nil {
		return fmt.Errorf("failed to expand config path: %w", err)
	}
	if err := config.CheckFormat(path); err != nil {
		return err
	}

	exists, err := deps.FS.Exists(path)
	if err != nil {
		return fmt.Errorf("failed to check config file: %w", err)
	}

	if exists && !force {
		confirmed, err := deps.Prompt.PromptForConfirmation(
			fmt.Sprintf("Configuration file %s already exists. Overwrite?", path), false)
		if err != nil {
			return err
		}
		if !confirmed {
			return ErrInitCancelled
		}
	}

	if config.IsTOML(path) {
		err = deps.Config.SaveConfig(deps.Config.DefaultConfig())
	} else {
		err = deps.FS.WriteFileAtomic(path, configs.DefaultConfigYAML, 0644)
	}
	if err != nil {
		return fmt.Errorf("failed to write configuration: %w", err)
	}

	if !Quiet {
		fmt.Fprintf(w, "Configuration written to %s\n", path)
	}
	return nil
}
