// Package routes names the client's navigable views and converts between
// route paths and their parsed form.
package routes

import (
	"errors"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

const (
	Root           = "/"
	Dashboard      = "/dashboard"
	Profile        = "/profile"
	EditProfile    = "/edit-profile"
	ForgotPassword = "/forgot-password"
	ResetPassword  = "/reset-password"
	About          = "/about"
	Saved          = "/saved"
	Share          = "/share"
)

// Name identifies a view.
type Name string

const (
	NameDashboard      Name = "dashboard"
	NameProfile        Name = "profile"
	NameEditProfile    Name = "edit-profile"
	NameForgotPassword Name = "forgot-password"
	NameResetPassword  Name = "reset-password"
	NameAbout          Name = "about"
	NameSaved          Name = "saved"
	NameShare          Name = "share"
	NameSearch         Name = "search"
	NameUser           Name = "user"
	NameEditResource   Name = "edit-resource"
)

var ErrUnknownRoute = errors.New("unknown route")

// Route is a parsed path. Param holds the keyword for search routes and the
// numeric id for user and edit-resource routes.
type Route struct {
	Name  Name
	Param string
}

// ID returns Param as an int64.
func (r Route) ID() (int64, error) {
	return strconv.ParseInt(r.Param, 10, 64)
}

func Search(keyword string) string {
	return "/search/" + url.PathEscape(keyword)
}

func User(id int64) string {
	return "/user/" + strconv.FormatInt(id, 10)
}

func EditResource(id int64) string {
	return "/edit-resource/" + strconv.FormatInt(id, 10)
}

var static = map[string]Name{
	Root:           NameDashboard,
	Dashboard:      NameDashboard,
	Profile:        NameProfile,
	EditProfile:    NameEditProfile,
	ForgotPassword: NameForgotPassword,
	ResetPassword:  NameResetPassword,
	About:          NameAbout,
	Saved:          NameSaved,
	Share:          NameShare,
}

// Parse resolves path to a Route. Trailing slashes are ignored.
func Parse(path string) (Route, error) {
	p := strings.TrimSpace(path)
	if p != Root {
		p = strings.TrimRight(p, "/")
	}
	if p == "" {
		p = Root
	}

	if name, ok := static[p]; ok {
		return Route{Name: name}, nil
	}

	head, tail, ok := strings.Cut(strings.TrimPrefix(p, "/"), "/")
	if !ok || tail == "" || strings.Contains(tail, "/") {
		return Route{}, fmt.Errorf("%w: %q", ErrUnknownRoute, path)
	}

	switch Name(head) {
	case NameSearch:
		kw, err := url.PathUnescape(tail)
		if err != nil {
			return Route{}, fmt.Errorf("%w: %q: %v", ErrUnknownRoute, path, err)
		}
		return Route{Name: NameSearch, Param: kw}, nil
	case NameUser, NameEditResource:
		if _, err := strconv.ParseInt(tail, 10, 64); err != nil {
			return Route{}, fmt.Errorf("%w: %q: bad id", ErrUnknownRoute, path)
		}
		return Route{Name: Name(head), Param: tail}, nil
	}

	return Route{}, fmt.Errorf("%w: %q", ErrUnknownRoute, path)
}
