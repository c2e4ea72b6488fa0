package main

import (
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/packrat-io/packrat/webcache"
)

type GenericError struct {
	Error   string `json:"error"`
	Message string `json:"message"`
}

type GenericStatus struct {
	Daemon  string `json:"daemon"`
	Status  string `json:"status"`
	Message string `json:"msg,omitempty"`
}

type PageCounts struct {
	URL   string `json:"url"`
	Count int64  `json:"count"`
}

func parsePageURL(raw string) (string, error) {
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("not a valid url: %v", err)
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return "", fmt.Errorf("expected an absolute http or https url")
	}
	return raw, nil
}

func (srv *Server) HandlePage(c echo.Context) error {
	ctx := c.Request().Context()

	pageURL, err := parsePageURL(c.QueryParam("url"))
	if err != nil {
		return c.JSON(400, GenericError{
			Error:   "InvalidURL",
			Message: fmt.Sprintf("%s", err),
		})
	}

	body, cached, err := srv.fetcher.FetchWithCacheState(ctx, pageURL)
	if err != nil {
		if errors.Is(err, webcache.ErrBadStatus) || errors.Is(err, webcache.ErrBodyTooLarge) {
			return c.JSON(502, GenericError{
				Error:   "UpstreamError",
				Message: fmt.Sprintf("%s", err),
			})
		}
		return c.JSON(500, GenericError{
			Error:   "InternalError",
			Message: fmt.Sprintf("%s", err),
		})
	}

	if cached {
		c.Response().Header().Set("X-Cache", "HIT")
	} else {
		c.Response().Header().Set("X-Cache", "MISS")
	}
	if count, err := srv.fetcher.AccessCount(ctx, pageURL); err != nil {
		srv.logger.Warn("failed to read access counter", "url", pageURL, "err", err)
	} else {
		c.Response().Header().Set("X-Access-Count", strconv.FormatInt(count, 10))
	}
	return c.Blob(200, "text/html; charset=utf-8", []byte(body))
}

func (srv *Server) HandleCounts(c echo.Context) error {
	ctx := c.Request().Context()

	pageURL, err := parsePageURL(c.QueryParam("url"))
	if err != nil {
		return c.JSON(400, GenericError{
			Error:   "InvalidURL",
			Message: fmt.Sprintf("%s", err),
		})
	}

	count, err := srv.fetcher.AccessCount(ctx, pageURL)
	if err != nil {
		return c.JSON(500, GenericError{
			Error:   "InternalError",
			Message: fmt.Sprintf("%s", err),
		})
	}
	return c.JSON(200, PageCounts{URL: pageURL, Count: count})
}

func (srv *Server) errorHandler(err error, c echo.Context) {
	code := http.StatusInternalServerError
	var errorMessage string
	if he, ok := err.(*echo.HTTPError); ok {
		code = he.Code
		errorMessage = fmt.Sprintf("%s", he.Message)
	}
	if code >= 500 {
		srv.logger.Warn("midden-http-internal-error", "err", err)
	}
	c.JSON(code, GenericStatus{Status: "error", Daemon: "midden", Message: errorMessage})
}

func (srv *Server) HandleHealthCheck(c echo.Context) error {
	return c.JSON(200, GenericStatus{Status: "ok", Daemon: "midden"})
}
