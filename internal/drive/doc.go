package drive

// Package drive wraps the Google Drive and Sheets APIs behind the narrow
// Client interface the enumerator and export pipeline need: paginated folder
// listing, tab name lookup, and CSV export of a single tab.
