package coda

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestListParams_ToValues(t *testing.T) {
	t.Run("empty params", func(t *testing.T) {
		values := NewListParams().ToValues()
		assert.Empty(t, values)
	})

	t.Run("nil params", func(t *testing.T) {
		var params *ListParams

		assert.Empty(t, params.ToValues())
	})

	t.Run("limit and token", func(t *testing.T) {
		values := NewListParams().WithLimit(25).WithPageToken("tok-abc").ToValues()
		assert.Equal(t, "25", values.Get("limit"))
		assert.Equal(t, "tok-abc", values.Get("pageToken"))
	})
}

func TestDocListParams_ToValues(t *testing.T) {
	params := NewDocListParams().WithIsOwner().WithQuery("plan").WithSourceDoc("AbCDeFGH")
	params.Limit = 10

	values := params.ToValues()
	assert.Equal(t, "true", values.Get("isOwner"))
	assert.Equal(t, "plan", values.Get("query"))
	assert.Equal(t, "AbCDeFGH", values.Get("sourceDoc"))
	assert.Equal(t, "10", values.Get("limit"))
}

func TestRowListParams_ToValues(t *testing.T) {
	t.Run("filter and column names", func(t *testing.T) {
		values := NewRowListParams().
			WithColumnFilter("c-1", "x").
			WithUseColumnNames().
			ToValues()

		assert.Equal(t, `c-1:"x"`, values.Get("query"))
		assert.Equal(t, "true", values.Get("useColumnNames"))
	})

	t.Run("raw query passes through", func(t *testing.T) {
		values := NewRowListParams().WithQuery(`c-2:"done"`).ToValues()
		assert.Equal(t, `c-2:"done"`, values.Get("query"))
	})
}

func TestRowGetParams_ToValues(t *testing.T) {
	assert.Empty(t, (&RowGetParams{}).ToValues())
	assert.Equal(t, "true", (&RowGetParams{UseColumnNames: true}).ToValues().Get("useColumnNames"))
}

func TestColumnFilter(t *testing.T) {
	tests := []struct {
		name     string
		column   string
		value    interface{}
		expected string
	}{
		{name: "column id is unquoted", column: "c-1", value: "x", expected: `c-1:"x"`},
		{name: "column name is quoted", column: "Status", value: "Done", expected: `"Status":"Done"`},
		{name: "numeric value", column: "c-2", value: 42, expected: `c-2:"42"`},
		{name: "quotes in value are escaped", column: "c-1", value: `say "hi"`, expected: `c-1:"say \"hi\""`},
		{name: "quotes in name are escaped", column: `The "Best" Col`, value: "y", expected: `"The \"Best\" Col":"y"`},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			assert.Equal(t, testCase.expected, ColumnFilter(testCase.column, testCase.value))
		})
	}
}
