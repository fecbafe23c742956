// Package casestore persists airway cases as one JSON file per case under a
// directory per case type:
//
//	<base>/case_saves/tracheostomy/<id>.json
//	<base>/case_saves/new_tracheostomy/<id>.json
//	<base>/case_saves/difficult_airway/<id>.json
//	<base>/case_saves/ltr/<id>.json
//
// Successful saves and loads push the file path onto a bounded recent list
// held by an external RecentList (the settings database in the CLI). Writes
// are atomic: a failed save leaves the previous file intact. Watch reports
// directory changes for display refresh only; concurrent edits by other
// processes are not reconciled and the last writer wins.
package casestore
