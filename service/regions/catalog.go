// Package regions holds the default catalog of AWS regions covered by a scan.
package regions

// catalog lists the scanned regions grouped by geography. Order is
// significant: scan output is grouped by region in catalog order.
var catalog = []string{
	// United States
	"us-east-1", // N. Virginia
	"us-east-2", // Ohio
	"us-west-1", // N. California
	"us-west-2", // Oregon
	// Asia Pacific
	"ap-southeast-5", // Malaysia
	"ap-south-1",     // Mumbai
	"ap-northeast-3", // Osaka
	"ap-northeast-2", // Seoul
	"ap-southeast-1", // Singapore
	"ap-southeast-2", // Sydney
	"ap-northeast-1", // Tokyo
	// Canada
	"ca-central-1", // Central
	"ca-west-1",    // Calgary
	// Europe
	"eu-central-1", // Frankfurt
	"eu-west-1",    // Ireland
	"eu-west-2",    // London
	"eu-west-3",    // Paris
	"eu-north-1",   // Stockholm
	// Middle East
	"me-south-1",   // Bahrain
	"me-central-1", // UAE
	// South America
	"sa-east-1", // São Paulo
}

// Catalog returns the default regions to scan, in display order.
func Catalog() []string {
	out := make([]string, len(catalog))
	copy(out, catalog)
	return out
}

// Filter restricts subset to catalog members, preserving the caller's order.
// Unknown region codes are dropped. A nil subset returns the full catalog.
func Filter(subset []string) []string {
	if subset == nil {
		return Catalog()
	}
	known := make(map[string]bool, len(catalog))
	for _, r := range catalog {
		known[r] = true
	}
	out := make([]string, 0, len(subset))
	for _, r := range subset {
		if known[r] {
			out = append(out, r)
		}
	}
	return out
}

// Contains reports whether region is part of the default catalog.
func Contains(region string) bool {
	for _, r := range catalog {
		if r == region {
			return true
		}
	}
	return false
}
