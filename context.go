package gmodutils

import (
	"crypto/tls"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/afero"

	"github.com/wojsza/gmodutils/pkg/cache"
	"github.com/wojsza/gmodutils/pkg/debugger"
	"github.com/wojsza/gmodutils/pkg/formatter"
	"github.com/wojsza/gmodutils/pkg/loader"
	"github.com/wojsza/gmodutils/pkg/logger"
	"github.com/wojsza/gmodutils/pkg/manifest"
	"github.com/wojsza/gmodutils/pkg/schema"
	"github.com/wojsza/gmodutils/pkg/types"
	"github.com/wojsza/gmodutils/pkg/validator"
	"github.com/wojsza/gmodutils/pkg/versioncheck"
)

// AddonContext holds utility services for working with addon code.
type AddonContext struct {
	// Debugger represents debugger.
	Debugger debuggable

	// Cache is storage for data.
	Cache cacheable

	// Logger is prefixed console logger of the addon.
	Logger *log.Logger

	// TableValidator is entity that has ability to validate records against schemas of rules.
	TableValidator recordValidator

	// ManifestValidators holds validators available to validate addon manifests.
	ManifestValidators ManifestValidators

	// Loader is entity that has ability to load addon scripts into the host runtime.
	Loader scriptLoader

	// VersionChecker is entity that has ability to obtain published addon version.
	VersionChecker versionChecker

	// Deserializers are entities that have ability to deserialize record documents.
	Deserializers Deserializers

	// TypeMapper is entity that has ability to map underlying data type into runtime data type.
	TypeMapper typeMapper
}

// ManifestValidators is container for addon manifest validators.
type ManifestValidators struct {
	// StringValidator represents entity that has ability to validate manifest against schema passed as string.
	StringValidator validator.SchemaValidator

	// ReferenceValidator represents entity that has ability to validate manifest against schema
	// passed as reference, which may be URL or relative/full OS path.
	ReferenceValidator validator.SchemaValidator
}

// Deserializers is container for record document deserializers.
type Deserializers struct {
	// JSON is entity that has ability to deserialize JSON bytes.
	JSON deserializable

	// YAML is entity that has ability to deserialize YAML bytes.
	YAML deserializable

	// Aware is entity that has ability to deserialize bytes in JSON or YAML format.
	Aware deserializable
}

type CustomTransport struct {
	http.RoundTripper
}

func (ct *CustomTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	req.Header.Add("User-Agent", "gmodutils")
	return ct.RoundTripper.RoundTrip(req)
}

var DefaultTransport http.RoundTripper = &http.Transport{
	TLSClientConfig: &tls.Config{InsecureSkipVerify: true},
}

// NewDefaultAddonContext returns *AddonContext with default services.
// prefix is console logger prefix of the addon.
// schemasDir may be empty string or valid full path to directory with manifest JSON schemas.
func NewDefaultAddonContext(prefix string, isDebug bool, schemasDir string) *AddonContext {
	defaultCache := cache.NewConcurrentCache()
	defaultDebugger := debugger.NewDefault(isDebug)
	defaultLogger := logger.New(prefix, os.Stderr, isDebug)

	defaultHTTPClient := &http.Client{Transport: &CustomTransport{DefaultTransport}}

	manifestValidators := ManifestValidators{
		StringValidator:    manifest.NewRawValidator(),
		ReferenceValidator: manifest.NewDefaultReferenceValidator(schemasDir),
	}

	deserializers := Deserializers{
		JSON:  formatter.NewJSONFormatter(),
		YAML:  formatter.NewYAMLFormatter(),
		Aware: formatter.NewAwareFormatter(formatter.NewJSONFormatter(), formatter.NewYAMLFormatter()),
	}

	defaultLoader := loader.New(afero.NewOsFs(), loader.NewLogIncluder(defaultLogger), defaultCache)

	return NewAddonContext(
		defaultLogger,
		defaultDebugger,
		defaultCache,
		schema.NewTableValidator(types.NewTableTypeMapper(), defaultDebugger),
		manifestValidators,
		defaultLoader,
		versioncheck.New(defaultHTTPClient, defaultDebugger),
		deserializers,
		types.NewTableTypeMapper(),
	)
}

// NewAddonContext returns *AddonContext with provided services.
func NewAddonContext(l *log.Logger, d debuggable, c cacheable, tv recordValidator, mv ManifestValidators,
	sl scriptLoader, vc versionChecker, ds Deserializers, tm typeMapper) *AddonContext {
	return &AddonContext{
		Debugger:           d,
		Cache:              c,
		Logger:             l,
		TableValidator:     tv,
		ManifestValidators: mv,
		Loader:             sl,
		VersionChecker:     vc,
		Deserializers:      ds,
		TypeMapper:         tm,
	}
}

// SetDebugger sets new debugger for AddonContext.
func (ac *AddonContext) SetDebugger(d debuggable) {
	ac.Debugger = d
}

// SetCache sets new Cache for AddonContext.
func (ac *AddonContext) SetCache(c cacheable) {
	ac.Cache = c
}

// SetLogger sets new Logger for AddonContext.
func (ac *AddonContext) SetLogger(l *log.Logger) {
	ac.Logger = l
}

// SetTableValidator sets new TableValidator for AddonContext.
func (ac *AddonContext) SetTableValidator(tv recordValidator) {
	ac.TableValidator = tv
}

// SetManifestStringValidator sets new manifest validator accepting schema string for AddonContext.
func (ac *AddonContext) SetManifestStringValidator(sv validator.SchemaValidator) {
	ac.ManifestValidators.StringValidator = sv
}

// SetManifestReferenceValidator sets new manifest validator accepting schema reference for AddonContext.
func (ac *AddonContext) SetManifestReferenceValidator(rv validator.SchemaValidator) {
	ac.ManifestValidators.ReferenceValidator = rv
}

// SetLoader sets new script Loader for AddonContext.
func (ac *AddonContext) SetLoader(sl scriptLoader) {
	ac.Loader = sl
}

// SetVersionChecker sets new VersionChecker for AddonContext.
func (ac *AddonContext) SetVersionChecker(vc versionChecker) {
	ac.VersionChecker = vc
}

// SetJSONDeserializer sets new JSON deserializer for AddonContext.
func (ac *AddonContext) SetJSONDeserializer(d deserializable) {
	ac.Deserializers.JSON = d
}

// SetYAMLDeserializer sets new YAML deserializer for AddonContext.
func (ac *AddonContext) SetYAMLDeserializer(d deserializable) {
	ac.Deserializers.YAML = d
}

// SetTypeMapper sets new type mapper for AddonContext.
func (ac *AddonContext) SetTypeMapper(tm typeMapper) {
	ac.TypeMapper = tm
}
