package cmd

import (
	"bytes"
	"context"
	"flag"
	"net/http"
	"net/http/httptest"
	"os"
	"slices"
	"strings"
	"testing"

	"github.com/google/subcommands"
)

// run executes c with args against a stub api, and returns what it printed.
func run(t *testing.T, c subcommands.Command, handler http.HandlerFunc, args ...string) (string, subcommands.ExitStatus) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	t.Setenv("BRFUNDS_SOURCE", "api")
	t.Setenv("BRFUNDS_API_URL", srv.URL)
	t.Setenv("BRFUNDS_LOCATION", "UTC")
	t.Setenv("BRFUNDS_RETRY_INTERVAL", "1ms")
	t.Setenv("BRFUNDS_LOG_LEVEL", "error")

	var buf bytes.Buffer
	stdout = &buf
	t.Cleanup(func() { stdout = os.Stdout })

	f := flag.NewFlagSet(c.Name(), flag.ContinueOnError)
	c.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("invalid args %q: %v", args, err)
	}
	status := c.Execute(context.Background(), f)
	return buf.String(), status
}

func TestFundCSV(t *testing.T) {
	var query string
	handler := func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Path + "?" + r.URL.RawQuery
		w.Write([]byte(`[{"indicatorName": "12345", "dates": [1577836800000, 1577923200000], "values": [500, 600]}]`))
	}
	out, status := run(t, &fundCmd{}, handler, "-start", "01/01/20", "-end", "31/01/20", "-csv", "12345")
	if status != subcommands.ExitSuccess {
		t.Fatalf("fund exited with %v", status)
	}
	want := "Date,12345\n2020-01-01,5\n2020-01-02,6\n"
	if out != want {
		t.Errorf("got\n%q\nwant\n%q", out, want)
	}
	if !strings.HasPrefix(query, "/12345/rentability/chart?") {
		t.Errorf("unexpected request %q", query)
	}
}

func TestFundTable(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"indicatorName": "12345", "dates": [1577836800000], "values": [1500000]}]`))
	}
	out, status := run(t, &fundCmd{}, handler, "-metric", "networth", "-period", "1y", "-end", "31/01/20", "12345")
	if status != subcommands.ExitSuccess {
		t.Fatalf("fund exited with %v", status)
	}
	if !strings.Contains(out, "| 2020-01-01 | R$1.500.000,00 |") {
		t.Errorf("missing formatted row in:\n%s", out)
	}
}

func TestFundErrors(t *testing.T) {
	unavailable := func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"indicatorName": "12345"}]`))
	}
	if _, status := run(t, &fundCmd{}, unavailable, "12345"); status != subcommands.ExitFailure {
		t.Errorf("missing data: got %v, want failure", status)
	}
	if _, status := run(t, &fundCmd{}, unavailable, "-period", "9y", "12345"); status != subcommands.ExitFailure {
		t.Errorf("invalid period: got %v, want failure", status)
	}
	if _, status := run(t, &fundCmd{}, unavailable, "-metric", "alpha", "12345"); status != subcommands.ExitUsageError {
		t.Errorf("invalid metric: got %v, want usage error", status)
	}
	if _, status := run(t, &fundCmd{}, unavailable); status != subcommands.ExitUsageError {
		t.Errorf("no fund: got %v, want usage error", status)
	}
}

func TestSearch(t *testing.T) {
	var search string
	handler := func(w http.ResponseWriter, r *http.Request) {
		search = r.URL.Query().Get("search")
		w.Write([]byte(`[{"id": 1, "cnpj": "12.345.678/0001-90", "socialName": "ALASKA BLACK FIC FIA"}]`))
	}
	out, status := run(t, &searchCmd{}, handler, "Alaska", "Black")
	if status != subcommands.ExitSuccess {
		t.Fatalf("search exited with %v", status)
	}
	if search != "alaska black" {
		t.Errorf("got search %q, want %q", search, "alaska black")
	}
	if !strings.Contains(out, "| 12.345.678/0001-90 | ALASKA BLACK FIC FIA |") {
		t.Errorf("missing result in:\n%s", out)
	}
}

func TestInfo(t *testing.T) {
	handler := func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`[{"socialName": "ALASKA BLACK FIC FIA", "cnpj": "12.345.678/0001-90"}]`))
	}
	out, status := run(t, &infoCmd{}, handler, "-path", "$[0].socialName", "12.345.678/0001-90")
	if status != subcommands.ExitSuccess {
		t.Fatalf("info exited with %v", status)
	}
	if out != "ALASKA BLACK FIC FIA\n" {
		t.Errorf("got %q", out)
	}

	out, status = run(t, &infoCmd{}, handler, "12.345.678/0001-90")
	if status != subcommands.ExitSuccess {
		t.Fatalf("info exited with %v", status)
	}
	if !strings.Contains(out, `"socialName": "ALASKA BLACK FIC FIA"`) {
		t.Errorf("missing json record in:\n%s", out)
	}
}

func TestLoadConfigFlagsBeforeValidation(t *testing.T) {
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Setenv("BRFUNDS_SOURCE", "bogus")

	saved := *sourceKind
	t.Cleanup(func() { *sourceKind = saved })

	*sourceKind = ""
	if _, err := loadConfig(); err == nil {
		t.Errorf("loadConfig() with an invalid source: want an error")
	}

	*sourceKind = "page"
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("loadConfig() with -source page failed: %v", err)
	}
	if cfg.Source.Kind != "page" {
		t.Errorf("got source %q, want %q", cfg.Source.Kind, "page")
	}
}

func TestCommaList(t *testing.T) {
	if got, want := commaList(" cdi, ,IBOV,"), []string{"cdi", "IBOV"}; !slices.Equal(got, want) {
		t.Errorf("commaList() = %q, want %q", got, want)
	}
	if got := commaList(""); len(got) != 0 {
		t.Errorf("commaList(\"\") = %q, want nothing", got)
	}
}

func TestCompletion(t *testing.T) {
	c := Completion()
	for _, name := range []string{"search", "info", "fund", "compare"} {
		if _, ok := c.Sub[name]; !ok {
			t.Errorf("missing completion for %q", name)
		}
	}
	metrics := c.Sub["fund"].Flags["metric"].Predict("")
	if !slices.Contains(metrics, "drawdown") {
		t.Errorf("metric predictions %q do not contain drawdown", metrics)
	}
	periods := c.Sub["compare"].Flags["period"].Predict("")
	if !slices.Contains(periods, "5y") {
		t.Errorf("period predictions %q do not contain 5y", periods)
	}
}
