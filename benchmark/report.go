/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */
package benchmark

import (
	"encoding/json"
	"fmt"
	"io"
	"path/filepath"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/spf13/afero"

	"github.com/ARM-software/golang-fold-utils/commonerrors"
)

// Report gathers the results of a benchmark run.
type Report struct {
	Size     int64     `json:"size"`
	Started  time.Time `json:"started"`
	Duration string    `json:"duration"`
	Results  []Result  `json:"results"`
}

// Sections lists the `<accumulator>/<group>` sections present in the report, in the order they were run.
func (r *Report) Sections() (sections []string) {
	for i := range r.Results {
		section := r.Results[i].Section()
		if len(sections) == 0 || sections[len(sections)-1] != section {
			sections = append(sections, section)
		}
	}
	return
}

// Find returns the result of a strategy in a section.
func (r *Report) Find(section string, strategy Strategy) (*Result, bool) {
	for i := range r.Results {
		if r.Results[i].Section() == section && r.Results[i].Strategy == strategy {
			return &r.Results[i], true
		}
	}
	return nil, false
}

// Fastest returns the result with the lowest mean time per operation in a section.
func (r *Report) Fastest(section string) (fastest *Result, found bool) {
	for i := range r.Results {
		result := &r.Results[i]
		if result.Section() != section {
			continue
		}
		if !found || result.NsPerOp.Mean < fastest.NsPerOp.Mean {
			fastest = result
			found = true
		}
	}
	return
}

func (r *Report) computeRelatives() {
	for i := range r.Results {
		baseline, found := r.Find(r.Results[i].Section(), StrategyFor)
		if found {
			r.Results[i].Relative = r.Results[i].NsPerOp.Ratio(baseline.NsPerOp)
		}
	}
}

// Write writes the report to w in the requested format.
func (r *Report) Write(w io.Writer, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case FormatText, "":
		return r.WriteText(w)
	case FormatJSON:
		return r.WriteJSON(w)
	default:
		return commonerrors.Newf(commonerrors.ErrUnsupported, "report format %q", format)
	}
}

// WriteJSON writes the report as indented JSON.
func (r *Report) WriteJSON(w io.Writer) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	err := encoder.Encode(r)
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrMarshalling, err, "could not serialise report")
	}
	return err
}

// WriteText writes the report as one table per section.
func (r *Report) WriteText(w io.Writer) (err error) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	for _, section := range r.Sections() {
		_, err = fmt.Fprintf(tw, "%v\t\t\t\t\t\t\n", section)
		if err != nil {
			return
		}
		_, err = fmt.Fprintln(tw, "strategy\ttime/op\t±\tvs for\tallocs/op\tbytes/op\tchecksum\t")
		if err != nil {
			return
		}
		for i := range r.Results {
			result := r.Results[i]
			if result.Section() != section {
				continue
			}
			_, err = fmt.Fprintf(tw, "%v\t%v\t%v\t%v\t%v\t%v\t%v\t\n",
				result.Strategy,
				formatNs(result.NsPerOp.Mean),
				formatNs(result.NsPerOp.StdDev),
				formatRelative(result.Relative),
				humanize.Comma(int64(result.AllocsPerOp.Mean)),
				humanize.IBytes(uint64(result.BytesPerOp.Mean)),
				humanize.Comma(result.Checksum),
			)
			if err != nil {
				return
			}
		}
		_, err = fmt.Fprintln(tw, "\t\t\t\t\t\t\t")
		if err != nil {
			return
		}
	}
	return tw.Flush()
}

// Save writes the report to a file on fs, creating parent directories if needed.
func (r *Report) Save(fs afero.Fs, path string, format string) (err error) {
	if fs == nil {
		return commonerrors.UndefinedParameter("missing filesystem")
	}
	if strings.TrimSpace(path) == "" {
		return commonerrors.UndefinedParameter("missing report path")
	}
	err = fs.MkdirAll(filepath.Dir(path), 0o755)
	if err != nil {
		return
	}
	f, err := fs.Create(path)
	if err != nil {
		return
	}
	defer func() { _ = f.Close() }()
	err = r.Write(f, format)
	if err != nil {
		return
	}
	return f.Close()
}

func formatNs(ns float64) string {
	return time.Duration(int64(ns)).String()
}

func formatRelative(ratio float64) string {
	if ratio == 0 {
		return "-"
	}
	return fmt.Sprintf("x%.2f", ratio)
}
