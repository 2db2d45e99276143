package web

import (
	"net/http"

	"github.com/rs/zerolog"

	"github.com/AlexisDongMariano/aws-orphans/service/storage"
)

// Server serves stored scan results over HTTP.
type Server struct {
	store  storage.Service
	logger *zerolog.Logger
	mux    *http.ServeMux
}

// resourceView describes one resource type's page and routes.
type resourceView struct {
	Key     string // storage resource key, e.g. "security-groups"
	Path    string // URL path fragment, e.g. "orphaned-sgs"
	Title   string
	Columns []string
}

var resourceViews = []resourceView{
	{
		Key:     "security-groups",
		Path:    "orphaned-sgs",
		Title:   "Unassociated Security Groups",
		Columns: []string{"Region", "Group ID", "Group Name", "Description", "VPC ID"},
	},
	{
		Key:     "elastic-ips",
		Path:    "orphaned-eips",
		Title:   "Unattached Elastic IPs",
		Columns: []string{"Region", "Allocation ID", "Public IP", "Domain"},
	},
	{
		Key:     "ebs-volumes",
		Path:    "orphaned-ebs",
		Title:   "Unattached EBS Volumes",
		Columns: []string{"Region", "Volume ID", "Size (GiB)", "Type", "AZ", "Created"},
	},
}
