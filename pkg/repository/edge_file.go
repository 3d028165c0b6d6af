package repository

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	"lintang/mapagent/pkg/datastructure"
)

// edge file: one edge per line,
// id:"meta":fow:frc:flowdir:from_int:to_int:len:"LINESTRING(lon lat, ...)"
const edgeFileFields = 9

var (
	ErrMalformedEdgeLine = errors.New("malformed edge line")
)

func ReadEdgeFile(path string) ([]datastructure.StoredEdge, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open edge file: %w", err)
	}
	defer f.Close()

	r, release, err := decompressReader(path, bufio.NewReader(f))
	if err != nil {
		return nil, err
	}
	defer release()

	edges, err := ReadEdges(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return edges, nil
}

// ReadEdges parses edge lines. blank lines and lines starting with '#' are skipped.
func ReadEdges(r io.Reader) ([]datastructure.StoredEdge, error) {
	cr := csv.NewReader(r)
	cr.Comma = ':'
	cr.Comment = '#'
	cr.FieldsPerRecord = edgeFileFields
	cr.LazyQuotes = true
	cr.ReuseRecord = true

	edges := make([]datastructure.StoredEdge, 0)
	for {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrMalformedEdgeLine, err)
		}
		line, _ := cr.FieldPos(0)

		edge, err := parseEdgeRecord(record)
		if err != nil {
			return nil, fmt.Errorf("%w: line %d: %w", ErrMalformedEdgeLine, line, err)
		}
		edges = append(edges, edge)
	}
	return edges, nil
}

func parseEdgeRecord(record []string) (datastructure.StoredEdge, error) {
	id, err := strconv.ParseUint(record[0], 10, 64)
	if err != nil {
		return datastructure.StoredEdge{}, fmt.Errorf("id: %w", err)
	}
	fow, err := strconv.ParseUint(record[2], 10, 8)
	if err != nil {
		return datastructure.StoredEdge{}, fmt.Errorf("fow: %w", err)
	}
	frc, err := strconv.ParseUint(record[3], 10, 8)
	if err != nil {
		return datastructure.StoredEdge{}, fmt.Errorf("frc: %w", err)
	}
	flow, err := strconv.ParseUint(record[4], 10, 8)
	if err != nil {
		return datastructure.StoredEdge{}, fmt.Errorf("flowdir: %w", err)
	}
	// 0 forward, 1 two way, 2 reverse.
	if !datastructure.Flow(flow).Valid() {
		return datastructure.StoredEdge{}, fmt.Errorf("flowdir: %w: %d", datastructure.ErrInvalidFlow, flow)
	}
	fromInt, err := strconv.ParseInt(record[5], 10, 64)
	if err != nil {
		return datastructure.StoredEdge{}, fmt.Errorf("from_int: %w", err)
	}
	toInt, err := strconv.ParseInt(record[6], 10, 64)
	if err != nil {
		return datastructure.StoredEdge{}, fmt.Errorf("to_int: %w", err)
	}
	length, err := strconv.ParseUint(record[7], 10, 32)
	if err != nil {
		return datastructure.StoredEdge{}, fmt.Errorf("len: %w", err)
	}

	geometry, err := unmarshalGeometry(record[8])
	if err != nil {
		return datastructure.StoredEdge{}, fmt.Errorf("geometry: %w", err)
	}

	return datastructure.NewStoredEdge(id, record[1], datastructure.FOW(fow), datastructure.FRC(frc), uint32(length),
		geometry, fromInt, toInt, datastructure.Flow(flow)), nil
}

func WriteEdgeFile(path string, edges []datastructure.StoredEdge) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create edge file: %w", err)
	}
	bw := bufio.NewWriter(f)
	zw, err := compressWriter(path, bw)
	if err != nil {
		f.Close()
		return err
	}
	if err := WriteEdges(zw, edges); err != nil {
		zw.Close()
		f.Close()
		return err
	}
	if err := zw.Close(); err != nil {
		f.Close()
		return err
	}
	if err := bw.Flush(); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

func WriteEdges(w io.Writer, edges []datastructure.StoredEdge) error {
	cw := csv.NewWriter(w)
	cw.Comma = ':'

	record := make([]string, edgeFileFields)
	for _, e := range edges {
		record[0] = strconv.FormatUint(e.ID, 10)
		record[1] = e.Meta
		record[2] = strconv.Itoa(int(e.Fow))
		record[3] = strconv.Itoa(int(e.Frc))
		record[4] = strconv.Itoa(int(e.Flow))
		record[5] = strconv.FormatInt(e.FromInt, 10)
		record[6] = strconv.FormatInt(e.ToInt, 10)
		record[7] = strconv.FormatUint(uint64(e.Length), 10)
		record[8] = marshalGeometry(e.Geometry)
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("write edge %d: %w", e.ID, err)
		}
	}
	cw.Flush()
	return cw.Error()
}
