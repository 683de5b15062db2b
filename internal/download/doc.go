package download

// Package download runs exports in the background. A run authenticates,
// clears the save directory, walks the folder tree and writes CSV files while
// streaming progress events to the caller. Exactly one terminal event ends
// every run, after which the event channel is closed.
