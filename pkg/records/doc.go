/*
Package records splits an input stream into path records.

Records are separated either by new lines (the default, matching the output
of find or git ls-files) or by null bytes (matching find -print0). Invalid
UTF-8 is replaced with U+FFFD instead of failing the read.

# Usage

	rd := records.NewReader(os.Stdin, records.Null)
	for {
		rec, err := rd.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		// use rec
	}
*/
package records
