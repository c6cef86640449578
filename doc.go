// Package gmodutils provides AddonContext struct with utility services for building
// Garry's Mod-style addons: rule-based table validation, addon manifest validation,
// realm-aware script loading, prefixed console logging and remote version checks.
//
// AddonContext may be initialized by two ways:
//
// First, returns *AddonContext with default services:
//	func NewDefaultAddonContext(prefix string, isDebug bool, schemasDir string) *AddonContext
//
// Second, more customisable, returns *AddonContext with provided services:
//	func NewAddonContext(l *log.Logger, d debuggable, c cacheable, tv recordValidator, mv ManifestValidators, sl scriptLoader, vc versionChecker, ds Deserializers, tm typeMapper) *AddonContext
//
// No matter which way you choose, you can inject your custom services afterwards
// with one of available setters:
//	func (ac *AddonContext) SetDebugger(d debuggable)
//	func (ac *AddonContext) SetCache(c cacheable)
//	func (ac *AddonContext) SetLogger(l *log.Logger)
//	func (ac *AddonContext) SetTableValidator(tv recordValidator)
//	func (ac *AddonContext) SetManifestStringValidator(sv validator.SchemaValidator)
//	func (ac *AddonContext) SetManifestReferenceValidator(rv validator.SchemaValidator)
//	func (ac *AddonContext) SetLoader(sl scriptLoader)
//	func (ac *AddonContext) SetVersionChecker(vc versionChecker)
//	func (ac *AddonContext) SetJSONDeserializer(d deserializable)
//	func (ac *AddonContext) SetYAMLDeserializer(d deserializable)
//	func (ac *AddonContext) SetTypeMapper(tm typeMapper)
//
// Working with addon code usually consist the following aspects:
//
// * Validating configuration tables:
//
//	func (ac *AddonContext) ValidateRecord(s schema.Schema, r schema.Record, label string) error
//	func (ac *AddonContext) ValidateRecordBytes(document []byte, s schema.Schema, label string) error
//
// * Validating addon manifests:
//
//	func (ac *AddonContext) ValidateManifestAgainstSchemaByString(document, jsonSchema string) error
//	func (ac *AddonContext) ValidateManifestAgainstSchemaByReference(document, reference string) error
//
// * Loading scripts:
//
//	func (ac *AddonContext) LoadScript(scriptPath string) error
//	func (ac *AddonContext) LoadScripts(dir string) error
//
// * Version checks:
//
//	func (ac *AddonContext) CheckLatestVersion(current, addr string) error
//	func (ac *AddonContext) GetLastRemoteVersion() (string, error)
//
// * Debugging:
//
//	func (ac *AddonContext) DebugStart()
//	func (ac *AddonContext) DebugStop()
//	func (ac *AddonContext) DebugPrintViolations(violations []schema.Violation, label string)
package gmodutils
