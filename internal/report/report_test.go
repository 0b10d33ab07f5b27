package report

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"

	"github.com/bytedance/sonic"
	"github.com/zeromicro/go-zero/core/logx"

	"typedemo/internal/typedemo"
)

func TestMain(m *testing.M) {
	logx.Disable()
	os.Exit(m.Run())
}

func TestFileReporter(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "字符", input: "c A"},
		{name: "整数", input: "i 10"},
		{name: "浮点", input: "f 1.5"},
		{name: "非法选择符", input: "x"},
		{name: "宽松模式非法值", input: "i abc"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "reports", "run.json")
			d := typedemo.New(strings.NewReader(tt.input), &bytes.Buffer{},
				typedemo.WithReporter(NewFileReporter(path)))
			want, err := d.Run(context.Background())
			if err != nil {
				t.Fatalf("Run(%q) error = %v", tt.input, err)
			}

			got, err := Load(path)
			if err != nil {
				t.Fatalf("Load error = %v", err)
			}
			if !reflect.DeepEqual(got, want) {
				t.Errorf("Load() = %+v, want %+v", got, want)
			}
		})
	}
}

func TestReportFormat(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	res := typedemo.Result{
		Selector:   "i",
		Kind:       typedemo.KindInt,
		Original:   "10",
		Successors: []string{"13", "16", "19", "22"},
		Size:       4,
	}
	if err := NewFileReporter(path).Report(context.Background(), res); err != nil {
		t.Fatalf("Report error = %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read report: %v", err)
	}

	var raw map[string]any
	if err := sonic.Unmarshal(data, &raw); err != nil {
		t.Fatalf("report is not JSON: %v\n%s", err, data)
	}
	if raw["kind"] != "int" {
		t.Errorf(`report["kind"] = %v, want "int"`, raw["kind"])
	}
	if _, ok := raw["codes"]; ok {
		t.Errorf("report has codes for an int run: %s", data)
	}
	if _, ok := raw["malformed"]; ok {
		t.Errorf("report has malformed for a clean run: %s", data)
	}

	// 不留下临时文件
	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("report dir has %d entries, want 1", len(entries))
	}
}

func TestReportUnwritableDir(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "file")
	if err := os.WriteFile(blocker, nil, 0644); err != nil {
		t.Fatal(err)
	}
	err := NewFileReporter(filepath.Join(blocker, "run.json")).Report(context.Background(), typedemo.Result{})
	if err == nil {
		t.Fatal("Report under a regular file: error = nil, want error")
	}
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(filepath.Join(dir, "missing.json")); err == nil {
		t.Error("Load(missing) error = nil, want error")
	}

	bad := filepath.Join(dir, "bad.json")
	if err := os.WriteFile(bad, []byte(`{"kind":"double"}`), 0644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(bad); err == nil {
		t.Error("Load(unknown kind) error = nil, want error")
	}
}
