package emitter_test

import (
	"bytes"
	"encoding/xml"
	"errors"
	"io"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/viant/rptxml/inspector/emitter"
)

func TestWriter(t *testing.T) {
	testCases := []struct {
		description string
		emit        func(sink emitter.Sink)
		expect      string
	}{
		{
			description: "empty element",
			emit: func(sink emitter.Sink) {
				sink.StartElement("Report")
				sink.Attribute("Name", "Orders")
				sink.EndElement()
			},
			expect: emitter.Header + "\n<Report Name=\"Orders\"/>\n",
		},
		{
			description: "nested with text",
			emit: func(sink emitter.Sink) {
				sink.StartElement("Report")
				sink.StartElement("DataDefinition")
				sink.StartElement("RecordSelectionFormula")
				sink.Text("{Orders.Amount} > 100 and\n{Orders.Name} <> \"x & y\"")
				sink.EndElement()
				sink.StartElement("Groups")
				sink.EndElement()
				sink.EndElement()
				sink.EndElement()
			},
			expect: emitter.Header + `
<Report>
  <DataDefinition>
    <RecordSelectionFormula>{Orders.Amount} &gt; 100 and
{Orders.Name} &lt;&gt; "x &amp; y"</RecordSelectionFormula>
    <Groups/>
  </DataDefinition>
</Report>
`,
		},
		{
			description: "attribute escaping",
			emit: func(sink emitter.Sink) {
				sink.StartElement("Field")
				sink.Attribute("FormulaName", `{@"A" & <B>}`)
				sink.EndElement()
			},
			expect: emitter.Header + "\n<Field FormulaName=\"{@&#34;A&#34; &amp; &lt;B&gt;}\"/>\n",
		},
	}
	for _, testCase := range testCases {
		buffer := &bytes.Buffer{}
		writer := emitter.NewWriter(buffer)
		testCase.emit(writer)
		require.NoError(t, writer.Flush(), testCase.description)
		assert.Equal(t, testCase.expect, buffer.String(), testCase.description)
		assertWellFormed(t, buffer.Bytes())
	}
}

func TestWriter_Indent(t *testing.T) {
	buffer := &bytes.Buffer{}
	writer := emitter.NewWriter(buffer, emitter.WithIndent("\t"))
	writer.StartElement("A")
	writer.StartElement("B")
	writer.EndElement()
	writer.EndElement()
	require.NoError(t, writer.Flush())
	assert.Equal(t, emitter.Header+"\n<A>\n\t<B/>\n</A>\n", buffer.String())
}

func TestWriter_InvalidCharacters(t *testing.T) {
	buffer := &bytes.Buffer{}
	writer := emitter.NewWriter(buffer)
	writer.StartElement("Text")
	writer.Attribute("Value", "bell\x07")
	writer.Text("nul\x00")
	writer.EndElement()
	require.NoError(t, writer.Flush())
	assertWellFormed(t, buffer.Bytes())
}

func TestWriter_Misuse(t *testing.T) {
	testCases := []struct {
		description string
		emit        func(sink emitter.Sink)
	}{
		{description: "end without start", emit: func(sink emitter.Sink) { sink.EndElement() }},
		{description: "text without element", emit: func(sink emitter.Sink) { sink.Text("x") }},
		{description: "attribute after child", emit: func(sink emitter.Sink) {
			sink.StartElement("A")
			sink.StartElement("B")
			sink.EndElement()
			sink.Attribute("Name", "x")
		}},
		{description: "invalid name", emit: func(sink emitter.Sink) { sink.StartElement("1st") }},
		{description: "second root", emit: func(sink emitter.Sink) {
			sink.StartElement("A")
			sink.EndElement()
			sink.StartElement("B")
		}},
	}
	for _, testCase := range testCases {
		for _, sink := range []emitter.Sink{emitter.NewWriter(io.Discard), emitter.NewTree()} {
			func() {
				defer func() {
					recovered := recover()
					err, ok := recovered.(error)
					if assert.True(t, ok, testCase.description) {
						assert.ErrorIs(t, err, emitter.ErrUnbalanced, testCase.description)
					}
				}()
				testCase.emit(sink)
			}()
		}
	}
}

func TestWriter_FlushOpen(t *testing.T) {
	writer := emitter.NewWriter(io.Discard)
	writer.StartElement("Report")
	assert.ErrorIs(t, writer.Flush(), emitter.ErrUnbalanced)
}

type failingWriter struct{}

func (failingWriter) Write(p []byte) (int, error) {
	return 0, errors.New("disk full")
}

func TestWriter_WriteError(t *testing.T) {
	writer := emitter.NewWriter(failingWriter{})
	writer.StartElement("Report")
	writer.EndElement()
	assert.EqualError(t, writer.Flush(), "disk full")
}

func TestTree_Replay(t *testing.T) {
	tree := emitter.NewTree()
	tree.StartElement("Report")
	tree.Attribute("Name", "Orders")
	tree.StartElement("SubReports")
	tree.StartElement("Report")
	tree.Attribute("Name", "Detail")
	tree.EndElement()
	tree.EndElement()
	tree.EndElement()
	require.True(t, tree.Balanced())

	sub := tree.Root.Find("SubReports/Report")
	require.NotNil(t, sub)
	name, ok := sub.Attr("Name")
	assert.True(t, ok)
	assert.Equal(t, "Detail", name)
	assert.Nil(t, tree.Root.Find("SubReports/Missing"))
	assert.Equal(t, []string{"Name"}, tree.Root.AttrNames())
	assert.Equal(t, []string{"SubReports"}, tree.Root.ChildNames())

	buffer := &bytes.Buffer{}
	writer := emitter.NewWriter(buffer)
	tree.Root.Replay(writer)
	require.NoError(t, writer.Flush())
	assert.Equal(t, emitter.Header+`
<Report Name="Orders">
  <SubReports>
    <Report Name="Detail"/>
  </SubReports>
</Report>
`, buffer.String())
}

func TestTree_EmptyText(t *testing.T) {
	emit := func(sink emitter.Sink) {
		sink.StartElement("Report")
		sink.Text("")
		sink.Attribute("Name", "Orders")
		sink.StartElement("RecordSelectionFormula")
		sink.Text("")
		sink.EndElement()
		sink.EndElement()
	}
	direct := &bytes.Buffer{}
	writer := emitter.NewWriter(direct)
	emit(writer)
	require.NoError(t, writer.Flush())

	tree := emitter.NewTree()
	emit(tree)
	require.True(t, tree.Balanced())
	assert.Equal(t, []string{"Name"}, tree.Root.AttrNames())
	replayed := &bytes.Buffer{}
	writer = emitter.NewWriter(replayed)
	tree.Root.Replay(writer)
	require.NoError(t, writer.Flush())
	assert.Equal(t, direct.String(), replayed.String())
	assert.Contains(t, direct.String(), `<Report Name="Orders">`)
}

func TestIsName(t *testing.T) {
	assert.True(t, emitter.IsName("BoxObject"))
	assert.True(t, emitter.IsName("_x-1.y"))
	assert.False(t, emitter.IsName(""))
	assert.False(t, emitter.IsName("Cross Tab"))
	assert.False(t, emitter.IsName("-x"))
}

func assertWellFormed(t *testing.T, data []byte) {
	t.Helper()
	decoder := xml.NewDecoder(bytes.NewReader(data))
	for {
		_, err := decoder.Token()
		if err == io.EOF {
			return
		}
		if !assert.NoError(t, err) {
			return
		}
	}
}
