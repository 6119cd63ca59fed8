package http

import (
	"github.com/labstack/echo/v4"
	"golang.org/x/text/language"
)

const (
	headerAcceptLanguage  = "Accept-Language"
	headerContentLanguage = "Content-Language"
)

// negotiateLocale picks the highest weighted tag of Accept-Language. A missing
// or malformed header yields language.Und, which formatters treat as the default.
func negotiateLocale(c echo.Context) language.Tag {
	header := c.Request().Header.Get(headerAcceptLanguage)
	if header == "" {
		return language.Und
	}

	tags, _, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return language.Und
	}

	tag := tags[0]
	c.Response().Header().Set(headerContentLanguage, tag.String())
	return tag
}
