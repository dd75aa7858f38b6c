package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"braces.dev/errtrace"
	"gopkg.in/yaml.v3"

	"github.com/ghettovoice/gouri/internal/errorutil"
	"github.com/ghettovoice/gouri/internal/ioutil"
	"github.com/ghettovoice/gouri/uri"
)

type report struct {
	Input         string           `json:"input" yaml:"input"`
	Scheme        string           `json:"scheme,omitempty" yaml:"scheme,omitempty"`
	Authority     *authorityReport `json:"authority,omitempty" yaml:"authority,omitempty"`
	Path          pathReport       `json:"path" yaml:"path"`
	Query         *string          `json:"query,omitempty" yaml:"query,omitempty"`
	Fragment      *string          `json:"fragment,omitempty" yaml:"fragment,omitempty"`
	HostPort      string           `json:"host_port,omitempty" yaml:"host_port,omitempty"`
	RequestTarget string           `json:"request_target" yaml:"request_target"`
}

type authorityReport struct {
	Raw      string     `json:"raw" yaml:"raw"`
	UserInfo *string    `json:"userinfo,omitempty" yaml:"userinfo,omitempty"`
	Host     hostReport `json:"host" yaml:"host"`
	Port     *uint16    `json:"port,omitempty" yaml:"port,omitempty"`
}

type hostReport struct {
	Kind string `json:"kind" yaml:"kind"`
	Name string `json:"name" yaml:"name"`
}

type pathReport struct {
	Form     string   `json:"form" yaml:"form"`
	Value    string   `json:"value" yaml:"value"`
	Segments []string `json:"segments,omitempty" yaml:"segments,omitempty"`
}

func newReport(input string, ref *uri.Reference) *report {
	rep := &report{
		Input:  input,
		Scheme: ref.Scheme(),
		Path: pathReport{
			Form:     ref.Path().Form().String(),
			Value:    ref.Path().String(),
			Segments: ref.Path().Segments(),
		},
		RequestTarget: ref.RequestTarget(),
	}
	if auth, ok := ref.Authority(); ok {
		rep.Authority = &authorityReport{
			Raw: auth.String(),
			Host: hostReport{
				Kind: auth.Host().Kind().String(),
				Name: auth.Host().Name(),
			},
		}
		if user, ok := auth.UserInfo(); ok {
			rep.Authority.UserInfo = &user
		}
		if port, ok := auth.Port(); ok {
			rep.Authority.Port = &port
		}
	}
	if q, ok := ref.Query(); ok {
		rep.Query = &q
	}
	if f, ok := ref.Fragment(); ok {
		rep.Fragment = &f
	}
	if hp, err := ref.HostPort(); err == nil {
		rep.HostPort = hp
	}
	return rep
}

type encoder func(w io.Writer, rep *report) error

func newEncoder(format string) (encoder, error) {
	switch strings.ToLower(format) {
	case "text", "":
		return encodeText, nil
	case "json":
		return encodeJSON, nil
	case "yaml", "yml":
		return encodeYAML, nil
	default:
		return nil, errtrace.Wrap(errorutil.NewInvalidArgumentError("unknown format %q", format))
	}
}

func encodeJSON(w io.Writer, rep *report) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return errtrace.Wrap(enc.Encode(rep))
}

func encodeYAML(w io.Writer, rep *report) error {
	data, err := yaml.Marshal(rep)
	if err != nil {
		return errtrace.Wrap(err)
	}

	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)
	cw.WriteString("---\n", string(data)) //nolint:errcheck
	_, err = cw.Result()
	return errtrace.Wrap(err)
}

func encodeText(w io.Writer, rep *report) error {
	cw := ioutil.GetCountingWriter(w)
	defer ioutil.FreeCountingWriter(cw)

	cw.WriteString("input: ", rep.Input, "\n") //nolint:errcheck
	if rep.Scheme != "" {
		cw.WriteString("scheme: ", rep.Scheme, "\n") //nolint:errcheck
	}
	if a := rep.Authority; a != nil {
		cw.WriteString("authority: ", a.Raw, "\n") //nolint:errcheck
		if a.UserInfo != nil {
			cw.WriteString("  userinfo: ", *a.UserInfo, "\n") //nolint:errcheck
		}
		cw.WriteString("  host: ", a.Host.Name, " (", a.Host.Kind, ")\n") //nolint:errcheck
		if a.Port != nil {
			cw.WriteString("  port: ", strconv.Itoa(int(*a.Port)), "\n") //nolint:errcheck
		}
	}
	cw.WriteString("path: ", rep.Path.Value, " (", rep.Path.Form, ")\n") //nolint:errcheck
	if len(rep.Path.Segments) > 0 {
		cw.WriteString("  segments: ", fmt.Sprintf("%q", rep.Path.Segments), "\n") //nolint:errcheck
	}
	if rep.Query != nil {
		cw.WriteString("query: ", *rep.Query, "\n") //nolint:errcheck
	}
	if rep.Fragment != nil {
		cw.WriteString("fragment: ", *rep.Fragment, "\n") //nolint:errcheck
	}
	if rep.HostPort != "" {
		cw.WriteString("host_port: ", rep.HostPort, "\n") //nolint:errcheck
	}
	cw.WriteString("request_target: ", rep.RequestTarget, "\n\n") //nolint:errcheck
	_, err := cw.Result()
	return errtrace.Wrap(err)
}
