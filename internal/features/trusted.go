// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Hariharan

package features

// DefaultTrustedDomains is the allow-list of trusted parent / partner domain
// substrings the shipped model was trained with. The host feature fires when
// the lower-cased host contains any of these.
//
// Overriding the list via configuration changes the feature distribution the
// classifier sees; only do so together with a retrained artifact.
var DefaultTrustedDomains = []string{
	"google.com",
	"facebook.com",
	"github.com",
	"amazon.com",
	"microsoft.com",
	"apple.com",
	"paypal.com",
	"linkedin.com",
	"netflix.com",
	"twitter.com",
	"instagram.com",

	// Education / Training / Enterprise
	"infosys.com",
	"onwingspan.com",
	"springboard.com",
	"coursera.org",
	"edx.org",
	"nptel.ac.in",
	"swayam.gov.in",

	// Cloud / Dev
	"cloudflare.com",
	"aws.amazon.com",
	"azure.microsoft.com",
	"googleapis.com",
}
