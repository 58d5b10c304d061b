// Package joblog persists the job journal of the qryddev command line tool
// in a single-table SQLite database.
//
// Every posted job is recorded with a UUID v7 id, the location URL the
// server assigned, the device it was posted to, and the status the journal
// last saw. Status commands update their entry; List reads the journal
// newest first. The journal is local bookkeeping only; the server remains
// the source of truth for job state.
package joblog
