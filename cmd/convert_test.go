package cmd

import (
	"context"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/subcommands"
	"golang.org/x/text/encoding/unicode"
)

// Helper function to create a temporary Nordnet export.
func createTempExport(t *testing.T, lines ...string) string {
	t.Helper()
	content, err := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM).NewEncoder().String(strings.Join(lines, "\r\n") + "\r\n")
	if err != nil {
		t.Fatalf("Failed to encode export: %v", err)
	}
	path := filepath.Join(t.TempDir(), "nordnet.csv")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("Failed to write temp file: %v", err)
	}
	return path
}

const exportHeader = "Id\tBogføringsdag\tTransaktionstype\tVærdipapirer\tISIN\tTransaktionstekst\tAntal\tKurs\tSamlede afgifter\tBeløb"

func runConvert(t *testing.T, args ...string) subcommands.ExitStatus {
	t.Helper()
	cmd := &convertCmd{}
	f := flag.NewFlagSet("convert", flag.ContinueOnError)
	cmd.SetFlags(f)
	if err := f.Parse(args); err != nil {
		t.Fatalf("Failed to parse flags %q: %v", args, err)
	}
	return cmd.Execute(context.Background(), f)
}

func TestConvertToFile(t *testing.T) {
	// Arrange
	input := createTempExport(t,
		exportHeader,
		"3\t2025-03-31\tDEPOTRENTE\t\t\tRente\t\t\t0,00\t5,00",
		"2\t2025-03-03\tKØBT\tFoo\tX1\tKøb\t5\t200,00\t10,00\t-1.010,00",
		"1\t2025-03-01\tINDBETALING\t\t\tIndbetaling\t\t\t0,00\t10.000,00",
	)
	output := filepath.Join(t.TempDir(), "dinero.csv")

	// Act
	status := runConvert(t, "-i", input, "-n", "67", "-o", output)

	// Assert
	if status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	want := `Bilag nr.;Dato;Tekst;Konto;Konto momstype;Beløb;Beløb udenlandsk valuta;Modkonto;Modkonto momstype
67;3/3/2025;Køb af Foo, ISIN: X1;55020;Ingen moms;-1000;0,0;51515;Ingen moms
67;3/3/2025;Kurtage af køb;55020;Ingen moms;-10;0,0;7220;Ingen moms
68;31/3/2025;Renter;55020;Ingen moms;5;0,0;9200;Ingen moms
`
	if string(got) != want {
		t.Errorf("Output mismatch.\nGot:\n%s\nWant:\n%s", got, want)
	}
}

func TestConvertDefaultsFromConfig(t *testing.T) {
	input := createTempExport(t, exportHeader, "1\t2025-03-31\tDEPOTRENTE\t\t\tRente\t\t\t0,00\t5,00")
	output := filepath.Join(t.TempDir(), "dinero.csv")

	old := config
	config = Config{Input: input, StartVoucher: 12}
	defer func() { config = old }()

	if status := runConvert(t, "-o", output); status != subcommands.ExitSuccess {
		t.Fatalf("Expected ExitSuccess, got %v", status)
	}
	got, err := os.ReadFile(output)
	if err != nil {
		t.Fatalf("Failed to read output file: %v", err)
	}
	if !strings.Contains(string(got), "\n12;31/3/2025;Renter;") {
		t.Errorf("Expected the voucher to be numbered from the configuration, got:\n%s", got)
	}
}

func TestConvertFailures(t *testing.T) {
	badType := createTempExport(t, exportHeader, "1\t2025-03-31\tSALG\tFoo\tX1\tSalg\t-5\t200,00\t10,00\t990,00")
	badAmount := createTempExport(t, exportHeader, "1\t2025-03-31\tDEPOTRENTE\t\t\tRente\t\t\t0,00\tfem")

	testCases := []struct {
		name string
		args []string
		want subcommands.ExitStatus
	}{
		{"missing input", []string{"-i", filepath.Join(t.TempDir(), "missing.csv")}, subcommands.ExitFailure},
		{"unknown transaction type", []string{"-i", badType}, subcommands.ExitFailure},
		{"invalid amount", []string{"-i", badAmount}, subcommands.ExitFailure},
		{"invalid first voucher", []string{"-i", badAmount, "-n", "0"}, subcommands.ExitUsageError},
		{"extra argument", []string{"-i", badAmount, "extra"}, subcommands.ExitUsageError},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			output := filepath.Join(t.TempDir(), "dinero.csv")
			args := append([]string{"-o", output}, tc.args...)
			if status := runConvert(t, args...); status != tc.want {
				t.Errorf("Expected %v, got %v", tc.want, status)
			}
			if _, err := os.Stat(output); !os.IsNotExist(err) {
				t.Errorf("Expected no output file after a failure, got %v", err)
			}
		})
	}
}

func TestLoadConfig(t *testing.T) {
	old := config
	defer func() { config = old }()

	chdir(t, t.TempDir()) // no .env file
	t.Setenv(EnvInput, "export.csv")
	t.Setenv(EnvStartVoucher, "67")
	t.Setenv(EnvVerbose, "true")
	if err := LoadConfig(); err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if want := (Config{Input: "export.csv", StartVoucher: 67, Verbose: true}); config != want {
		t.Errorf("LoadConfig() = %+v, want %+v", config, want)
	}

	t.Setenv(EnvStartVoucher, "-1")
	if err := LoadConfig(); err == nil {
		t.Error("LoadConfig() expected an error for a negative first voucher")
	}
}

func TestLoadConfigDotEnv(t *testing.T) {
	old := config
	defer func() { config = old }()

	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, ".env"), []byte(EnvStartVoucher+"=42\n"), 0644); err != nil {
		t.Fatal(err)
	}
	chdir(t, dir)
	t.Setenv(EnvStartVoucher, "") // registers the cleanup, LoadConfig treats it as unset.
	os.Unsetenv(EnvStartVoucher)

	if err := LoadConfig(); err != nil {
		t.Fatalf("LoadConfig() unexpected error: %v", err)
	}
	if config.StartVoucher != 42 {
		t.Errorf("LoadConfig() StartVoucher = %d, want 42 from .env", config.StartVoucher)
	}
}

// chdir changes the working directory for the duration of the test,
// like testing.T.Chdir (Go 1.24+), restoring it on cleanup.
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("Getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("Chdir(%q): %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("Chdir(%q): %v", wd, err)
		}
	})
}
