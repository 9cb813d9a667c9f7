package incident

import (
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"github.com/jszwec/csvutil"
	"github.com/rotisserie/eris"
)

const utf8BOM = "\ufeff"

// ReadCSV decodes the incident CSV. Columns beyond RequiredColumns are
// ignored; a missing required column is an error.
func ReadCSV(r io.Reader) ([]Raw, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err == io.EOF {
		return nil, eris.New("incident: csv has no header")
	}
	if err != nil {
		return nil, eris.Wrap(err, "incident: read header")
	}
	header[0] = strings.TrimPrefix(header[0], utf8BOM)

	if missing := missingColumns(header); len(missing) > 0 {
		return nil, eris.Errorf("incident: missing columns: %s", strings.Join(missing, ", "))
	}

	dec, err := csvutil.NewDecoder(cr, header...)
	if err != nil {
		return nil, eris.Wrap(err, "incident: create csv decoder")
	}

	var rows []Raw
	if err := dec.Decode(&rows); err != nil {
		if errors.Is(err, io.EOF) {
			return []Raw{}, nil
		}
		return nil, eris.Wrap(err, "incident: decode csv")
	}
	return rows, nil
}

func missingColumns(header []string) []string {
	present := make(map[string]bool, len(header))
	for _, h := range header {
		present[h] = true
	}

	var missing []string
	for _, c := range RequiredColumns {
		if !present[c] {
			missing = append(missing, c)
		}
	}
	return missing
}

// WriteCSV encodes records with a header row and no index column.
func WriteCSV(w io.Writer, records []Record) error {
	cw := csv.NewWriter(w)
	enc := csvutil.NewEncoder(cw)

	if len(records) == 0 {
		if err := enc.EncodeHeader(Record{}); err != nil {
			return eris.Wrap(err, "incident: encode header")
		}
	} else if err := enc.Encode(records); err != nil {
		return eris.Wrap(err, "incident: encode csv")
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return eris.Wrap(err, "incident: flush csv")
	}
	return nil
}
