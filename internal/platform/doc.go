package platform

// Package platform contains OS integration: filesystem helpers for the save
// directory, opening folders and URLs, and parsing Drive folder links.
