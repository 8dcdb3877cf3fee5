package whogoesfirst

import (
	"errors"
	"flag"
	"io"
	"os"
	"path/filepath"
	"testing"
	"testing/fstest"

	"github.com/louisbranch/whogoesfirst/internal/catalog"
	"github.com/louisbranch/whogoesfirst/internal/platform/i18n/messages"
	"github.com/louisbranch/whogoesfirst/internal/services/web/routes"
	"github.com/louisbranch/whogoesfirst/internal/services/web/templates"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func newFlagSet() *flag.FlagSet {
	fs := flag.NewFlagSet("whogoesfirst", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(newFlagSet(), nil)
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Host != "127.0.0.1" {
		t.Fatalf("Host = %q, want %q", cfg.Host, "127.0.0.1")
	}
	if cfg.Port != 8080 {
		t.Fatalf("Port = %d, want %d", cfg.Port, 8080)
	}
	if cfg.Debug {
		t.Fatal("Debug = true, want false")
	}
	if cfg.Addr() != "127.0.0.1:8080" {
		t.Fatalf("Addr() = %q, want %q", cfg.Addr(), "127.0.0.1:8080")
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("WHOGOESFIRST_HOST", "0.0.0.0")
	t.Setenv("WHOGOESFIRST_PORT", "9000")
	t.Setenv("WHOGOESFIRST_ANALYTICS_ID", "UA-1")

	cfg, err := ParseConfig(newFlagSet(), []string{"-port", "9001", "-debug"})
	if err != nil {
		t.Fatalf("ParseConfig() error = %v", err)
	}
	if cfg.Host != "0.0.0.0" {
		t.Fatalf("Host = %q, want env value", cfg.Host)
	}
	if cfg.Port != 9001 {
		t.Fatalf("Port = %d, want flag value", cfg.Port)
	}
	if !cfg.Debug {
		t.Fatal("Debug = false, want true")
	}
	if cfg.AnalyticsID != "UA-1" {
		t.Fatalf("AnalyticsID = %q, want env value", cfg.AnalyticsID)
	}
}

func TestParseConfigRejectsBadInput(t *testing.T) {
	if _, err := ParseConfig(newFlagSet(), []string{"-port", "70000"}); err == nil {
		t.Fatal("expected out of range port error")
	}
	if _, err := ParseConfig(newFlagSet(), []string{"-unknown"}); err == nil {
		t.Fatal("expected unknown flag error")
	}
	t.Setenv("WHOGOESFIRST_PORT", "eighty")
	if _, err := ParseConfig(newFlagSet(), nil); err == nil {
		t.Fatal("expected env parse error")
	}
}

func TestBuildDerivesBuiltinSite(t *testing.T) {
	deps, err := Build()
	if err != nil {
		t.Fatalf("Build() error = %v", err)
	}
	if _, ok := deps.Table.Lookup("/fr/cartes/prix/à-propos/"); !ok {
		t.Fatal("route table is missing the French award about page")
	}
	for _, route := range deps.Table.Routes() {
		if !route.Page.Kind.Localized() {
			continue
		}
		if !deps.Renderer.Has(route.Page.TemplateName()) {
			t.Fatalf("route %s has no template %q", route.Path, route.Page.TemplateName())
		}
	}
}

func TestCheckTemplatesRejectsMissingCardTemplate(t *testing.T) {
	t.Parallel()

	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("catalog.Default() error = %v", err)
	}
	table, err := routes.Build(c)
	if err != nil {
		t.Fatalf("routes.Build() error = %v", err)
	}
	renderer, err := templates.NewRendererFromFS(fstest.MapFS{
		"pages/site.html": &fstest.MapFile{Data: []byte(
			`{{define "redirect"}}r{{end}}{{define "index"}}i{{end}}{{define "about_index"}}a{{end}}{{define "random_card"}}c{{end}}`,
		)},
	}, "pages/*.html")
	if err != nil {
		t.Fatalf("NewRendererFromFS() error = %v", err)
	}
	err = checkTemplates(table, renderer)
	if !errors.Is(err, templates.ErrTemplateNotFound) {
		t.Fatalf("checkTemplates() error = %v, want ErrTemplateNotFound", err)
	}
}

func TestWarnMissingMessagesLogsUntranslatedKeys(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	files := map[string]string{
		"locales/en/web.yaml": "locale: \"en\"\nnamespace: \"web\"\nmessages:\n  \"a.key\": \"a\"\n  \"b.key\": \"b\"\n",
		"locales/fr/web.yaml": "locale: \"fr\"\nnamespace: \"web\"\nmessages:\n  \"a.key\": \"à\"\n",
	}
	for name, content := range files {
		path := filepath.Join(dir, name)
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			t.Fatalf("mkdir: %v", err)
		}
		if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	bundle, err := messages.LoadFromFS(os.DirFS(dir))
	if err != nil {
		t.Fatalf("LoadFromFS() error = %v", err)
	}

	core, logs := observer.New(zapcore.WarnLevel)
	warnMissingMessages(zap.New(core), bundle)

	entries := logs.All()
	if len(entries) != 1 {
		t.Fatalf("warnings = %d, want 1", len(entries))
	}
	if locale := entries[0].ContextMap()["locale"]; locale != "fr" {
		t.Fatalf("warned locale = %v, want fr", locale)
	}
}
