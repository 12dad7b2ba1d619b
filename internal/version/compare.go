package version

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// CheckConfigCompatibility checks if the binary and a config file's schema
// version are compatible. Returns nil if compatible, error with details if
// not.
//
// Compatibility Rules:
//   - If either version is "main" (development build), compatibility check
//     is skipped
//   - Major versions must match exactly
//   - Minor versions must match exactly
//   - Patch versions can differ (e.g., 1.2.0 is compatible with 1.2.5)
func CheckConfigCompatibility(binaryVersion, configVersion string) error {
	// Strip 'v' prefix if present for consistency
	binaryVersion = strings.TrimPrefix(binaryVersion, "v")
	configVersion = strings.TrimPrefix(configVersion, "v")

	// Skip version check for "main" (development builds)
	if binaryVersion == "main" || configVersion == "main" {
		return nil
	}

	binarySemver, err := semver.NewVersion(binaryVersion)
	if err != nil {
		return fmt.Errorf("invalid binary version '%s': %w", binaryVersion, err)
	}

	configSemver, err := semver.NewVersion(configVersion)
	if err != nil {
		return fmt.Errorf("invalid config schema version '%s': %w", configVersion, err)
	}

	if binarySemver.Major() != configSemver.Major() {
		return fmt.Errorf("major version mismatch: binary is %d.x.x but config requires %d.x.x",
			binarySemver.Major(), configSemver.Major())
	}

	if binarySemver.Minor() != configSemver.Minor() {
		return fmt.Errorf("minor version mismatch: binary is %d.%d.x but config requires %d.%d.x",
			binarySemver.Major(), binarySemver.Minor(),
			configSemver.Major(), configSemver.Minor())
	}

	// Patch versions can differ, so we're compatible
	return nil
}
