package handlers

import (
	"testing"

	"github.com/biosecret/go-tasks/tasks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/valyala/fasthttp"
)

func argsOf(query string) *fasthttp.Args {
	args := &fasthttp.Args{}
	args.Parse(query)
	return args
}

func TestListParamsFromArgs_Defaults(t *testing.T) {
	params, err := listParamsFromArgs(argsOf(""))
	require.NoError(t, err)
	assert.Equal(t, tasks.DefaultListParams(), params)
}

func TestListParamsFromArgs(t *testing.T) {
	params, err := listParamsFromArgs(argsOf("page=2&per_page=3&sort_by=created_at&sort_order=desc&filter%5Bis_completed%5D=0"))
	require.NoError(t, err)

	assert.Equal(t, 2, params.Page)
	assert.Equal(t, 3, params.PerPage)
	assert.Equal(t, "created_at", params.SortBy)
	assert.Equal(t, "desc", params.SortOrder)
	assert.Equal(t, tasks.FlagFalse, params.Completed)
}

func TestListParamsFromArgs_UnparsableFilterIsUnset(t *testing.T) {
	params, err := listParamsFromArgs(argsOf("filter[is_completed]=maybe"))
	require.NoError(t, err)
	assert.Equal(t, tasks.FlagUnset, params.Completed)
}

func TestListParamsFromArgs_ExplicitZeroKept(t *testing.T) {
	params, err := listParamsFromArgs(argsOf("per_page=0&page=-1"))
	require.NoError(t, err)
	assert.Equal(t, 0, params.PerPage)
	assert.Equal(t, -1, params.Page)
}

func TestListParamsFromArgs_NonInteger(t *testing.T) {
	_, err := listParamsFromArgs(argsOf("page=two"))
	assert.EqualError(t, err, "page must be an integer")

	_, err = listParamsFromArgs(argsOf("per_page=1.5"))
	assert.EqualError(t, err, "per_page must be an integer")
}
