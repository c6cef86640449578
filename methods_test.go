package gmodutils

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/mock"

	"github.com/wojsza/gmodutils/pkg/cache"
	"github.com/wojsza/gmodutils/pkg/debugger"
	"github.com/wojsza/gmodutils/pkg/loader"
	"github.com/wojsza/gmodutils/pkg/logger"
	"github.com/wojsza/gmodutils/pkg/schema"
	"github.com/wojsza/gmodutils/pkg/types"
)

type mockedVersionChecker struct {
	mock.Mock
}

func (m *mockedVersionChecker) Fetch(addr string) (string, error) {
	args := m.Called(addr)

	return args.String(0), args.Error(1)
}

func (m *mockedVersionChecker) IsOutdated(current, remote string) (bool, error) {
	args := m.Called(current, remote)

	return args.Bool(0), args.Error(1)
}

func testAddonContext() (*AddonContext, *bytes.Buffer) {
	var buf bytes.Buffer

	ac := NewDefaultAddonContext("myaddon", false, "")
	ac.SetLogger(logger.New("myaddon", &buf, false))

	return ac, &buf
}

func TestAddonContext_ValidateRecord(t *testing.T) {
	s := schema.Schema{
		"name":   schema.Of(types.String),
		"health": schema.Of(types.Number),
	}

	tests := []struct {
		name    string
		record  schema.Record
		wantErr bool
	}{
		{name: "valid record", record: schema.Record{"name": "rebel", "health": 100}, wantErr: false},
		{name: "invalid record", record: schema.Record{"name": 5, "health": "full"}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ac, _ := testAddonContext()

			err := ac.ValidateRecord(s, tt.record, "npc settings")
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRecord() error = %v, wantErr %v", err, tt.wantErr)
			}

			if err != nil && !errors.Is(err, ErrRecordValidation) {
				t.Errorf("ValidateRecord() error %v should wrap ErrRecordValidation", err)
			}
		})
	}
}

func TestAddonContext_ValidateRecordBytes(t *testing.T) {
	s := schema.Schema{
		"name":   schema.Of(types.String),
		"health": schema.Of(types.Number),
	}

	type args struct {
		document []byte
	}
	tests := []struct {
		name    string
		args    args
		wantErr bool
	}{
		{name: "valid json document", args: args{document: []byte(`{"name": "rebel", "health": 100}`)}, wantErr: false},
		{name: "valid yaml document", args: args{document: []byte("name: rebel\nhealth: 100\n")}, wantErr: false},
		{name: "json document violating schema", args: args{document: []byte(`{"name": 5}`)}, wantErr: true},
		{name: "not deserializable document", args: args{document: []byte(`name = rebel`)}, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ac, _ := testAddonContext()

			err := ac.ValidateRecordBytes(tt.args.document, s, "")
			if (err != nil) != tt.wantErr {
				t.Errorf("ValidateRecordBytes() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestAddonContext_ValidateManifestAgainstSchemaByString(t *testing.T) {
	jsonSchema := `{"type": "object", "properties": {"title": {"type": "string"}}, "required": ["title"]}`

	ac, _ := testAddonContext()

	if err := ac.ValidateManifestAgainstSchemaByString(`{"title": "my addon"}`, jsonSchema); err != nil {
		t.Errorf("ValidateManifestAgainstSchemaByString() error = %v", err)
	}

	err := ac.ValidateManifestAgainstSchemaByString(`{"version": "1.0.0"}`, jsonSchema)
	if !errors.Is(err, ErrManifest) {
		t.Errorf("expected ErrManifest, got %v", err)
	}
}

func TestAddonContext_LoadScripts(t *testing.T) {
	fs := afero.NewMemMapFs()
	for _, f := range []string{"scripts/sv_init.lua", "scripts/cl_hud.lua"} {
		if err := afero.WriteFile(fs, f, []byte("return {}"), 0644); err != nil {
			t.Fatalf("could not prepare script file: %v", err)
		}
	}

	ac, buf := testAddonContext()

	registry := cache.NewDefaultCache()
	ac.SetCache(registry)
	ac.SetLoader(loader.New(fs, loader.NewLogIncluder(ac.Logger), registry))

	if err := ac.LoadScripts("scripts"); err != nil {
		t.Errorf("LoadScripts() error = %v", err)
	}

	if !strings.Contains(buf.String(), "loaded 2 scripts") {
		t.Errorf("log output %q should mention loaded script count", buf.String())
	}

	if realm, err := registry.GetSaved("scripts/sv_init.lua"); err != nil || realm != loader.RealmServer {
		t.Errorf("registry entry = %v, %v, want %v", realm, err, loader.RealmServer)
	}
}

func TestAddonContext_CheckLatestVersion(t *testing.T) {
	tests := []struct {
		name     string
		mockFunc func(m *mockedVersionChecker)
		wantErr  error
	}{
		{
			name: "up to date",
			mockFunc: func(m *mockedVersionChecker) {
				m.On("Fetch", "https://updates.example.com/myaddon").Return("1.2.0", nil).Once()
				m.On("IsOutdated", "1.2.0", "1.2.0").Return(false, nil).Once()
			},
		},
		{
			name: "outdated",
			mockFunc: func(m *mockedVersionChecker) {
				m.On("Fetch", "https://updates.example.com/myaddon").Return("1.3.0", nil).Once()
				m.On("IsOutdated", "1.2.0", "1.3.0").Return(true, nil).Once()
			},
			wantErr: ErrOutdatedVersion,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ac, _ := testAddonContext()

			m := new(mockedVersionChecker)
			tt.mockFunc(m)
			ac.SetVersionChecker(m)

			err := ac.CheckLatestVersion("1.2.0", "https://updates.example.com/myaddon")
			if tt.wantErr == nil && err != nil {
				t.Errorf("CheckLatestVersion() error = %v", err)
			}

			if tt.wantErr != nil && !errors.Is(err, tt.wantErr) {
				t.Errorf("CheckLatestVersion() error = %v, want %v", err, tt.wantErr)
			}

			m.AssertExpectations(t)
		})
	}
}

func TestAddonContext_CheckLatestVersion_preservesRemoteVersion(t *testing.T) {
	ac, _ := testAddonContext()

	m := new(mockedVersionChecker)
	m.On("Fetch", mock.Anything).Return("2.0.0", nil).Once()
	m.On("IsOutdated", "2.0.0", "2.0.0").Return(false, nil).Once()
	ac.SetVersionChecker(m)

	if _, err := ac.GetLastRemoteVersion(); err == nil {
		t.Errorf("expected error before any version check")
	}

	if err := ac.CheckLatestVersion("2.0.0", "https://updates.example.com/myaddon"); err != nil {
		t.Errorf("CheckLatestVersion() error = %v", err)
	}

	version, err := ac.GetLastRemoteVersion()
	if err != nil {
		t.Errorf("GetLastRemoteVersion() error = %v", err)
	}

	if version != "2.0.0" {
		t.Errorf("GetLastRemoteVersion() = %v, want 2.0.0", version)
	}
}

func TestAddonContext_DebugPrintViolations(t *testing.T) {
	violations := []schema.Violation{
		{Field: "health", Constraint: "must be a number", Err: schema.ErrFieldViolation},
		{Field: "name", Constraint: "must be a string", Err: schema.ErrFieldViolation},
	}

	type args struct {
		violations []schema.Violation
		label      string
		isDebug    bool
	}
	tests := []struct {
		name string
		args args
		want string
	}{
		{name: "debugging mode off", args: args{violations: violations, label: "npc settings", isDebug: false}, want: ""},
		{name: "no violations", args: args{violations: nil, label: "npc settings", isDebug: true}, want: ""},
		{name: "violations with label", args: args{violations: violations, label: "npc settings", isDebug: true}, want: "npc settings: health (must be a number), name (must be a string)\n"},
		{name: "violations without label", args: args{violations: violations, isDebug: true}, want: "health (must be a number), name (must be a string)\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ac, _ := testAddonContext()

			var buf bytes.Buffer
			ac.SetDebugger(debugger.New(tt.args.isDebug, false, 3072, &buf))

			ac.DebugPrintViolations(tt.args.violations, tt.args.label)

			if buf.String() != tt.want {
				t.Errorf("DebugPrintViolations() output = %q, want %q", buf.String(), tt.want)
			}
		})
	}
}

func TestAddonContext_DebugStartStop(t *testing.T) {
	ac, _ := testAddonContext()

	if ac.Debugger.IsOn() {
		t.Errorf("debugging mode should be off after construction")
	}

	ac.DebugStart()
	if !ac.Debugger.IsOn() {
		t.Errorf("debugging mode should be on")
	}

	ac.DebugStop()
	if ac.Debugger.IsOn() {
		t.Errorf("debugging mode should be off")
	}
}
