// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/fitiplus/models"
)

// renderBuildInfoWindow lists the linker-provided build values. Unset values
// already read "N/A" through models.AppBuildInfo.
func renderBuildInfoWindow(info models.AppBuildInfo) string {
	rows := [][2]string{
		{"Aplicación", "FitiPlus"},
		{"Versión", info.BuildVersion()},
		{"Fecha", info.BuildDate()},
		{"Commit", fitText(info.BuildCommit(), 12)},
	}

	lines := make([]string, 0, len(rows))
	for _, r := range rows {
		lines = append(lines, fmt.Sprintf("%-11s %s", r[0]+":", r[1]))
	}
	return renderPage("ACERCA DE", strings.Join(lines, "\n"), "esc: volver")
}
