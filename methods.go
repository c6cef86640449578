package gmodutils

import (
	"errors"
	"fmt"

	"github.com/wojsza/gmodutils/pkg/schema"
	"github.com/wojsza/gmodutils/pkg/stringutils"
)

// lastRemoteVersionCacheKey represents cache key under which last fetched remote version is saved.
const lastRemoteVersionCacheKey = "LAST_REMOTE_VERSION"

// ValidateRecord checks whether record r matches schema s. All field violations
// aggregate into returned error. label names validated table in diagnostics and may be empty.
func (ac *AddonContext) ValidateRecord(s schema.Schema, r schema.Record, label string) error {
	isValid, violations := ac.TableValidator.Validate(s, r, label)
	if isValid {
		return nil
	}

	return fmt.Errorf("%w: %s", ErrRecordValidation, schema.Render(violations))
}

// ValidateRecordBytes deserializes document in JSON or YAML format and checks it against schema s.
func (ac *AddonContext) ValidateRecordBytes(document []byte, s schema.Schema, label string) error {
	var raw map[string]any
	if err := ac.Deserializers.Aware.Deserialize(document, &raw); err != nil {
		return fmt.Errorf("%w: %s", ErrRecordValidation, err.Error())
	}

	return ac.ValidateRecord(s, schema.Record(raw), label)
}

// ValidateManifestAgainstSchemaByString checks whether addon manifest document
// matches JSON schema passed as string.
func (ac *AddonContext) ValidateManifestAgainstSchemaByString(document, jsonSchema string) error {
	if err := ac.ManifestValidators.StringValidator.Validate(document, jsonSchema); err != nil {
		return fmt.Errorf("%w: %s", ErrManifest, err.Error())
	}

	return nil
}

// ValidateManifestAgainstSchemaByReference checks whether addon manifest document
// matches JSON schema referenced by URL or OS path.
func (ac *AddonContext) ValidateManifestAgainstSchemaByReference(document, reference string) error {
	if err := ac.ManifestValidators.ReferenceValidator.Validate(document, reference); err != nil {
		return fmt.Errorf("%w: %s", ErrManifest, err.Error())
	}

	return nil
}

// LoadScript loads single script file into the host runtime according to its realm.
func (ac *AddonContext) LoadScript(scriptPath string) error {
	realm, err := ac.Loader.LoadFile(scriptPath)
	if err != nil {
		return err
	}

	ac.Logger.Debug("script loaded", "script", scriptPath, "realm", realm)

	return nil
}

// LoadScripts loads all script files of dir into the host runtime.
// Every file is attempted; failures aggregate into returned error.
func (ac *AddonContext) LoadScripts(dir string) error {
	loaded, err := ac.Loader.LoadDirectory(dir)

	ac.Logger.Info(fmt.Sprintf("loaded %d %s", len(loaded), stringutils.Pluralize(len(loaded), "script")), "dir", dir)

	return err
}

// CheckLatestVersion fetches published addon version from addr and compares it
// with current one. Fetched version is preserved in cache. When remote version
// is newer, returned error wraps ErrOutdatedVersion.
func (ac *AddonContext) CheckLatestVersion(current, addr string) error {
	remote, err := ac.VersionChecker.Fetch(addr)
	if err != nil {
		return err
	}

	ac.Cache.Save(lastRemoteVersionCacheKey, remote)

	isOutdated, err := ac.VersionChecker.IsOutdated(current, remote)
	if err != nil {
		return err
	}

	if isOutdated {
		ac.Logger.Warn("addon is outdated", "current", current, "remote", remote)

		return fmt.Errorf("%w: %s is available, you are running %s", ErrOutdatedVersion, remote, current)
	}

	return nil
}

// GetLastRemoteVersion returns remote version preserved by last successful CheckLatestVersion call.
func (ac *AddonContext) GetLastRemoteVersion() (string, error) {
	versionInterface, err := ac.Cache.GetSaved(lastRemoteVersionCacheKey)
	if err != nil {
		return "", err
	}

	version, ok := versionInterface.(string)
	if !ok {
		return "", errors.New("value preserved under last remote version key is not string")
	}

	return version, nil
}

// DebugPrintViolations prints violations through debugger. Nothing is printed
// when debugging mode is off or there are no violations. label names validated
// table and may be empty.
func (ac *AddonContext) DebugPrintViolations(violations []schema.Violation, label string) {
	if !ac.Debugger.IsOn() || len(violations) == 0 {
		return
	}

	report := schema.Render(violations)
	if label != "" {
		report = fmt.Sprintf("%s: %s", label, report)
	}

	ac.Debugger.Print(report)
}

// DebugStart turns debugging mode on.
func (ac *AddonContext) DebugStart() {
	ac.Debugger.TurnOn()
}

// DebugStop turns debugging mode off.
func (ac *AddonContext) DebugStop() {
	ac.Debugger.TurnOff()
}
