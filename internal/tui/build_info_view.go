// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import "github.com/MKhiriev/remote-mirror/models"

const appName = "remote-mirror"

func pageTitle(info models.AppBuildInfo) string {
	return appName + " " + info.BuildVersion()
}
