package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"encoding/xml"
	"errors"
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"jumplist-exporter/core/storage"
	"jumplist-exporter/core/storage/mocks"
	"jumplist-exporter/feature/jumplist/models"

	"github.com/google/go-cmp/cmp"
	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const stamp = "20240102030405"

func allSinks() Options {
	return Options{CSVDir: "/out/csv", JSONDir: "/out/json", HTMLDir: "/out/html"}
}

func readCSV(t *testing.T, fs afero.Fs, path string) [][]string {
	t.Helper()
	data, err := afero.ReadFile(fs, path)
	require.NoError(t, err)
	rows, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	return rows
}

// xhtmlValues collects the text of every element named name, in document order.
func xhtmlValues(t *testing.T, data []byte, name string) []string {
	t.Helper()
	dec := xml.NewDecoder(bytes.NewReader(data))
	var out []string
	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			return out
		}
		require.NoError(t, err)
		if start, ok := tok.(xml.StartElement); ok && start.Name.Local == name {
			var v string
			require.NoError(t, dec.DecodeElement(&v, &start))
			out = append(out, v)
		}
	}
}

func TestStamp(t *testing.T) {
	at := time.Date(2024, 1, 2, 3, 4, 5, 0, time.FixedZone("X", 3600))
	assert.Equal(t, "20240102020405", Stamp(at))
}

func TestNames(t *testing.T) {
	assert.Equal(t, "20240102030405_AutomaticDestinations.csv", csvName(stamp, models.KindAutomatic, ""))
	assert.Equal(t, "case1_CustomDestinations.tsv", csvName(stamp, models.KindCustom, "case1.tsv"))
	assert.Equal(t, "case1_AutomaticDestinations", csvName(stamp, models.KindAutomatic, "case1"))
	assert.Equal(t, "20240102030405_x.automaticDestinations-ms.json", jsonName(stamp, `C:\a\x.automaticDestinations-ms`))
	assert.Equal(t, "20240102030405_y.json", jsonName(stamp, "/a/y"))
	assert.Equal(t, "20240102030405_JumpList_Custom_Output", htmlDirName(stamp, models.KindCustom))
}

func TestExport_CSV(t *testing.T) {
	fs := afero.NewMemMapFs()
	exp := NewExporter(storage.NewClient(fs), Options{CSVDir: "/out/csv"}, stamp, nil)

	results := exp.Export(models.KindAutomatic, automaticSets())
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)
	assert.Equal(t, 2, results[0].Records)

	rows := readCSV(t, fs, "/out/csv/20240102030405_AutomaticDestinations.csv")
	require.Len(t, rows, 3)
	assert.Equal(t, models.Columns(models.KindAutomatic), rows[0])

	header := rows[0]
	first := map[string]string{}
	for i, name := range header {
		first[name] = rows[1][i]
	}
	assert.Equal(t, "1", first["EntryNumber"])
	assert.Equal(t, "", first["CreationTime"])
	assert.Equal(t, "", first["TargetCreated"])
	assert.Equal(t, "", first["MacAddress"])
	assert.Equal(t, `C:\Data\a,b "quoted" <tag>&amp.txt`, first["Path"])
	assert.Equal(t, "", first["SourceCreated"])
	assert.Equal(t, "2023-05-06 07:08:09", first["SourceModified"])
}

func TestExport_CustomCSVName(t *testing.T) {
	fs := afero.NewMemMapFs()
	exp := NewExporter(storage.NewClient(fs), Options{CSVDir: "/out", CSVFile: "case42.csv"}, stamp, nil)

	results := exp.Export(models.KindCustom, customSets())
	require.NoError(t, results[0].Err)

	rows := readCSV(t, fs, "/out/case42_CustomDestinations.csv")
	require.Len(t, rows, 2)
	assert.Equal(t, models.Columns(models.KindCustom), rows[0])
}

func TestExport_Idempotent(t *testing.T) {
	fs := afero.NewMemMapFs()
	client := storage.NewClient(fs)

	NewExporter(client, Options{CSVDir: "/out"}, "20240101000000", nil).Export(models.KindAutomatic, automaticSets())
	NewExporter(client, Options{CSVDir: "/out"}, "20240101000001", nil).Export(models.KindAutomatic, automaticSets())

	first, err := afero.ReadFile(fs, "/out/20240101000000_AutomaticDestinations.csv")
	require.NoError(t, err)
	second, err := afero.ReadFile(fs, "/out/20240101000001_AutomaticDestinations.csv")
	require.NoError(t, err)

	if diff := cmp.Diff(string(first), string(second)); diff != "" {
		t.Errorf("export output differs between runs (-first +second):\n%s", diff)
	}
}

func TestExport_SinksAgree(t *testing.T) {
	fs := afero.NewMemMapFs()
	exp := NewExporter(storage.NewClient(fs), allSinks(), stamp, nil)

	sets := automaticSets()
	results := exp.Export(models.KindAutomatic, sets)
	require.Len(t, results, 3)
	for _, r := range results {
		require.NoError(t, r.Err, r.Sink)
	}

	want := sets[0].Records[0].Fields()

	// CSV
	rows := readCSV(t, fs, "/out/csv/20240102030405_AutomaticDestinations.csv")
	for i, f := range want {
		assert.Equal(t, f.Value, rows[1][i], "csv %s", f.Name)
	}

	// JSON
	data, err := afero.ReadFile(fs, "/out/json/20240102030405_5f7b5f1e01b83767.automaticDestinations-ms.json")
	require.NoError(t, err)
	var doc struct {
		Kind    string
		Records []map[string]string
	}
	require.NoError(t, json.Unmarshal(data, &doc))
	assert.Equal(t, "Automatic", doc.Kind)
	require.Len(t, doc.Records, 2)
	for _, f := range want {
		assert.Equal(t, f.Value, doc.Records[0][f.Name], "json %s", f.Name)
	}
	assert.Contains(t, string(data), `<tag>&amp.txt`)

	// XHTML
	html, err := afero.ReadFile(fs, "/out/html/20240102030405_JumpList_Automatic_Output/index.xhtml")
	require.NoError(t, err)
	for _, name := range []string{"Path", "CreationTime", "TargetCreated", "TargetIDAbsolutePath", "MacAddress"} {
		got := xhtmlValues(t, html, name)
		require.Len(t, got, 2, name)
		assert.Equal(t, fieldMap(sets[0].Records[0])[name], got[0], "xhtml %s", name)
	}
	assert.Equal(t, []string{"line1\nline2"}, xhtmlValues(t, html, "Path")[1:])
}

func TestExport_XHTMLLayout(t *testing.T) {
	fs := afero.NewMemMapFs()
	exp := NewExporter(storage.NewClient(fs), Options{HTMLDir: "/report"}, stamp, nil)

	t.Run("Automatic", func(t *testing.T) {
		exp.Export(models.KindAutomatic, automaticSets())
		dir := "/report/20240102030405_JumpList_Automatic_Output"

		html, err := afero.ReadFile(fs, dir+"/index.xhtml")
		require.NoError(t, err)
		text := string(html)

		assert.True(t, strings.HasPrefix(text, `<?xml version="1.0" encoding="utf-8"?>`))
		assert.Contains(t, text, `<?xml-stylesheet href="styles/normalize.css"?>`)
		assert.Contains(t, text, `<?xml-stylesheet href="styles/style.css"?>`)
		assert.Equal(t, []string{"1", "2"}, xhtmlValues(t, html, "EntryNumber_large"))
		assert.Equal(t, []string{"4"}, xhtmlValues(t, html, "DestListVersion"))
		assert.Empty(t, xhtmlValues(t, html, "Arguments"))
		assert.Empty(t, xhtmlValues(t, html, "Notes"))

		for _, name := range []string{"normalize.css", "style.css"} {
			exists, err := afero.Exists(fs, filepath.Join(dir, "styles", name))
			require.NoError(t, err)
			assert.True(t, exists, name)
		}
	})

	t.Run("Custom", func(t *testing.T) {
		exp.Export(models.KindCustom, customSets())

		html, err := afero.ReadFile(fs, "/report/20240102030405_JumpList_Custom_Output/index.xhtml")
		require.NoError(t, err)

		assert.Equal(t, []string{"0"}, xhtmlValues(t, html, "EntryNumber_large"))
		assert.Equal(t, []string{"/new"}, xhtmlValues(t, html, "Arguments"))
		assert.Equal(t, []string{`C:\Windows\notepad.exe`}, xhtmlValues(t, html, "TargetIDAbsolutePath"))
		assert.Empty(t, xhtmlValues(t, html, "DestListVersion"))
	})
}

func TestExport_JSONPretty(t *testing.T) {
	fs := afero.NewMemMapFs()
	opts := Options{JSONDir: "/json", Pretty: true}
	NewExporter(storage.NewClient(fs), opts, stamp, nil).Export(models.KindCustom, customSets())

	data, err := afero.ReadFile(fs, "/json/20240102030405_9b9cdc69c1c24e2b.customDestinations-ms.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"Kind\": \"Custom\"")
	assert.Contains(t, string(data), `"EntryName": "Tasks"`)
}

func TestExport_EmptyContainerJSON(t *testing.T) {
	fs := afero.NewMemMapFs()
	set := models.RecordSet{Header: models.ContainerHeader{Kind: models.KindCustom, SourceFields: models.SourceFields{SourceFile: "/x/empty"}}}

	NewExporter(storage.NewClient(fs), Options{JSONDir: "/json"}, stamp, nil).Export(models.KindCustom, []models.RecordSet{set})

	data, err := afero.ReadFile(fs, "/json/20240102030405_empty.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), `"Records":[]`)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("disk full") }
func (failingWriter) Close() error              { return nil }

func TestExport_SinkFailureIsolated(t *testing.T) {
	t.Run("Begin failure", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("EnsureDir", "/csv").Return(false, errors.New("permission denied"))
		client.On("EnsureDir", "/json").Return(false, nil)
		client.On("WriteFile", mock.MatchedBy(func(p string) bool { return strings.HasPrefix(p, "/json/") }), mock.Anything).Return(nil)

		results := NewExporter(client, Options{CSVDir: "/csv", JSONDir: "/json"}, stamp, nil).
			Export(models.KindAutomatic, automaticSets())

		require.Len(t, results, 2)
		assert.Equal(t, "csv", results[0].Sink)
		assert.Error(t, results[0].Err)
		assert.Equal(t, 0, results[0].Records)
		assert.Equal(t, "json", results[1].Sink)
		assert.NoError(t, results[1].Err)
		assert.Equal(t, 2, results[1].Records)
		client.AssertExpectations(t)
	})

	t.Run("Header write failure", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("EnsureDir", "/csv").Return(true, nil)
		client.On("Create", "/csv/20240102030405_CustomDestinations.csv").Return(failingWriter{}, nil)
		client.On("EnsureDir", "/json").Return(false, nil)
		client.On("WriteFile", mock.Anything, mock.Anything).Return(nil)

		results := NewExporter(client, Options{CSVDir: "/csv", JSONDir: "/json"}, stamp, nil).
			Export(models.KindCustom, customSets())

		assert.ErrorContains(t, results[0].Err, "disk full")
		assert.NoError(t, results[1].Err)
		client.AssertNumberOfCalls(t, "WriteFile", 1)
	})

	t.Run("Write failure disables sink", func(t *testing.T) {
		client := new(mocks.Client)
		client.On("EnsureDir", "/json").Return(false, nil)
		client.On("WriteFile", mock.Anything, mock.Anything).Return(errors.New("read-only")).Once()

		sets := append(customSets(), customSets()...)
		results := NewExporter(client, Options{JSONDir: "/json"}, stamp, nil).Export(models.KindCustom, sets)

		assert.ErrorContains(t, results[0].Err, "read-only")
		assert.Equal(t, 0, results[0].Records)
		client.AssertNumberOfCalls(t, "WriteFile", 1)
	})
}

func TestOptions_Enabled(t *testing.T) {
	assert.False(t, Options{}.Enabled())
	assert.True(t, Options{HTMLDir: "x"}.Enabled())
}
