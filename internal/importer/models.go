package importer

// Config contains the parameters for an import run.
type Config struct {
	InstanceIDs      []string // AWS EC2 instance IDs to import
	ResourceName     string   // Resource name override ("" = derive from the Name tag)
	ConcurrencyLimit int      // Maximum number of concurrent lookups (0 = unlimited)
}

// ImportResult records the outcome for a single instance.
type ImportResult struct {
	InstanceID   string
	ResourceName string
	Error        error
}
