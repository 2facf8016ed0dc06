package handlers

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/biosecret/go-tasks/tasks"
	"github.com/valyala/fasthttp"
)

const filterCompletedKey = "filter[is_completed]"

// listParamsFromArgs đọc tham số phân trang, lọc, sắp xếp từ query string
func listParamsFromArgs(args *fasthttp.Args) (tasks.ListParams, error) {
	params := tasks.DefaultListParams()

	if args.Has(filterCompletedKey) {
		params.Completed = tasks.ParseFlag(string(args.Peek(filterCompletedKey)))
	}
	if v := strings.TrimSpace(string(args.Peek("sort_by"))); v != "" {
		params.SortBy = v
	}
	if v := strings.TrimSpace(string(args.Peek("sort_order"))); v != "" {
		params.SortOrder = v
	}

	var err error
	if params.Page, err = intArg(args, "page", tasks.DefaultPage); err != nil {
		return tasks.ListParams{}, err
	}
	if params.PerPage, err = intArg(args, "per_page", tasks.DefaultPerPage); err != nil {
		return tasks.ListParams{}, err
	}
	return params, nil
}

func intArg(args *fasthttp.Args, key string, fallback int) (int, error) {
	raw := strings.TrimSpace(string(args.Peek(key)))
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	return n, nil
}
