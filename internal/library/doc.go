// Package library manages the music library directory tree: it lists the
// folders a downloaded track can be filed into and moves the track there.
//
// # Folders
//
// The library root's immediate subdirectories are the filing targets:
//
//	folders, err := library.ListFolders("/music")
//	// ["Jazz", "Rock", "Soundtracks"]
//
// # Placement
//
// Placer moves a file into root/<folder>, creating the folder if needed.
// Creation is a single level: folder names with path separators are
// rejected. An existing file with the same name in the destination is an
// error, never overwritten.
//
//	p := library.NewPlacer("/music", library.NewCoverArt(600), logger)
//	err := p.Place("/music/Song.mp3", "Rock", report)
//
// # Cover Art
//
// With a CoverArt configured, placing a track into a folder without a
// cover.jpg extracts the track's embedded picture, scales it with
// Catmull-Rom and saves it as the folder cover.
package library
