// Package audio reads metadata from downloaded audio files.
//
// Only ID3v2 tags are understood, which covers the mp3 files produced by
// the default downloader command. Other containers simply yield no tags.
//
// # Reading Tags
//
//	info, err := audio.ReadInfo("/music/Song.mp3")
//	if err != nil {
//	    return err
//	}
//	fmt.Println(info.Summary())
//	if info.HasPicture() {
//	    // info.Picture holds the embedded cover art
//	}
package audio
