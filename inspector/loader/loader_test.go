package loader_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/rptxml/inspector/loader"
	"github.com/viant/rptxml/inspector/model"
)

const rootDump = `
Name: Orders
FileName: C:\reports\orders.rpt
HasSavedData: true
SummaryInfo:
  ReportTitle: Orders by region
Subreports:
  - Name: Inline
    Report:
      DataDefinition:
        RecordSelectionFormula: "{Orders.Id} > 0"
  - Name: Detail
    Location: detail.yaml
  - Name: Missing
    Location: missing.yaml
  - Name: Broken
    Location: broken.yaml
DataDefinition:
  ParameterFields:
    - Kind: ParameterField
      Name: Region
DefinitionModel:
  GroupConditions:
    "{@GroupName}": "{Orders.Region}"
  MaxLines:
    Text1: 3
  Conditions:
    - Scope: Font
      Owner: Text1
      Formulas:
        Color: crRed
        Bold: "true"
        Empty: ""
`

const detailDump = `
Name: OrderDetail
Subreports:
  - Name: Back
    Location: detail.yaml
DataDefinition:
  ParameterFields:
    - Kind: FormulaField
      Name: NotAParameter
`

func writeFiles(t *testing.T, files map[string]string) string {
	dir := t.TempDir()
	for name, content := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644))
	}
	return dir
}

func TestLoader_Load(t *testing.T) {
	dir := writeFiles(t, map[string]string{
		"orders.yaml": rootDump,
		"detail.yaml": detailDump,
		"broken.yaml": "Name: [",
	})
	ctx := context.Background()
	report, err := loader.New().Load(ctx, filepath.Join(dir, "orders.yaml"))
	require.NoError(t, err)
	defer report.Close()

	assert.Equal(t, "Orders", report.Name())
	assert.False(t, report.IsSubreport())
	require.NotNil(t, report.Origin())
	assert.True(t, report.Origin().HasSavedData)
	assert.Equal(t, `C:\reports\orders.rpt`, report.Origin().FileName)
	assert.Equal(t, "Orders by region", report.Origin().SummaryInfo.ReportTitle)
	assert.Equal(t, []string{"Inline", "Detail", "Missing", "Broken"}, report.SubreportNames())

	inline, err := report.OpenSubreport("Inline")
	require.NoError(t, err)
	assert.Equal(t, "Inline", inline.Name())
	assert.True(t, inline.IsSubreport())
	assert.Nil(t, inline.Origin())
	assert.Equal(t, "{Orders.Id} > 0", inline.DataDefinition().RecordSelectionFormula)

	detail, err := report.OpenSubreport("Detail")
	require.NoError(t, err)
	assert.Equal(t, "OrderDetail", detail.Name())
	_, err = detail.ParameterFields()
	assert.Error(t, err)
	_, err = detail.DefinitionModel()
	assert.ErrorIs(t, err, model.ErrNoDefinitionModel)
	_, err = detail.OpenSubreport("Back")
	assert.ErrorContains(t, err, "location cycle")

	_, err = report.OpenSubreport("Missing")
	assert.Error(t, err)
	_, err = report.OpenSubreport("Broken")
	assert.ErrorContains(t, err, "failed to decode subreport")
	_, err = report.OpenSubreport("Unknown")
	assert.ErrorIs(t, err, model.ErrNotFound)

	parameters, err := report.ParameterFields()
	require.NoError(t, err)
	assert.Len(t, parameters, 1)
	assert.NotNil(t, report.Database())
	assert.NotNil(t, report.ReportDefinition())
}

func TestDefinition(t *testing.T) {
	dir := writeFiles(t, map[string]string{"orders.yaml": rootDump})
	report, err := loader.New().Load(context.Background(), filepath.Join(dir, "orders.yaml"))
	require.NoError(t, err)
	definition, err := report.DefinitionModel()
	require.NoError(t, err)

	condition, err := definition.GroupNameCondition("{@GroupName}")
	require.NoError(t, err)
	assert.Equal(t, "{Orders.Region}", condition)
	_, err = definition.GroupNameCondition("{@Other}")
	assert.ErrorIs(t, err, model.ErrNotFound)

	lines, ok := definition.MaxNumberOfLines("Text1")
	assert.True(t, ok)
	assert.Equal(t, 3, lines)
	_, ok = definition.MaxNumberOfLines("Text2")
	assert.False(t, ok)

	assert.Equal(t, []model.ConditionFormula{
		{Name: "Bold", Text: "true"},
		{Name: "Color", Text: "crRed"},
	}, definition.ConditionFormulas(model.ScopeFont, "Text1"))
	assert.Empty(t, definition.ConditionFormulas(model.ScopeBorder, "Text1"))

	_, err = definition.ParameterInitialValues("Region")
	assert.ErrorIs(t, err, model.ErrNotFound)
}

func TestLoader_LoadFailure(t *testing.T) {
	dir := writeFiles(t, map[string]string{"bad.yaml": "Name: ["})
	_, err := loader.New().Load(context.Background(), filepath.Join(dir, "bad.yaml"))
	assert.Error(t, err)
	_, err = loader.New().Load(context.Background(), filepath.Join(dir, "none.yaml"))
	assert.Error(t, err)
}

func TestLoader_NullEntries(t *testing.T) {
	dump := `
Name: Orders
Subreports:
  - ~
  - Name: Inline
    Report:
      Subreports: [~]
  - ~
DefinitionModel:
  Conditions:
    - ~
    - {Scope: Font, Owner: Text1, Formulas: {Color: crRed}}
`
	report, err := loader.New().Decode(context.Background(), []byte(dump), "mem://localhost/orders.yaml")
	require.NoError(t, err)
	assert.Equal(t, []string{"Inline"}, report.SubreportNames())
	inline, err := report.OpenSubreport("Inline")
	require.NoError(t, err)
	assert.Empty(t, inline.SubreportNames())

	definition, err := report.DefinitionModel()
	require.NoError(t, err)
	assert.Equal(t, []model.ConditionFormula{{Name: "Color", Text: "crRed"}}, definition.ConditionFormulas(model.ScopeFont, "Text1"))
	assert.Empty(t, definition.ConditionFormulas(model.ScopePageMargins, ""))
}
