package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/pflag"

	"github.com/cancanxinxin/grl/pkg/framelog"
	"github.com/cancanxinxin/grl/pkg/trackfb"
)

func runInspect(args []string) error {
	var in string
	var markers bool
	fs := pflag.NewFlagSet("inspect", pflag.ContinueOnError)
	fs.StringVarP(&in, "in", "i", "", "frame log to read")
	fs.BoolVar(&markers, "markers", false, "also print each marker pose")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if in == "" {
		return errors.New("inspect: --in is required")
	}

	f, err := os.Open(in)
	if err != nil {
		return err
	}
	defer f.Close()
	r, err := framelog.NewReader(f)
	if err != nil {
		return fmt.Errorf("%s: %w", in, err)
	}
	defer r.Close()

	out := bufio.NewWriter(os.Stdout)
	defer out.Flush()
	printMeta(out, r.Meta())

	for i := 0; ; i++ {
		rec, err := r.Next()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return fmt.Errorf("record %d: %w", i, err)
		}
		switch rec.Type {
		case framelog.TypeFrame:
			printFrame(out, i, rec.Payload, markers)
		case framelog.TypeParameters:
			printParameters(out, i, rec.Payload)
		default:
			fmt.Fprintf(out, "#%d %s (%d bytes)\n", i, rec.Type, len(rec.Payload))
		}
	}
}

func printMeta(w io.Writer, m framelog.Meta) {
	fmt.Fprintf(w, "session %s\n", m.SessionID)
	fmt.Fprintf(w, "  version     %d\n", m.Version)
	fmt.Fprintf(w, "  schema      %s\n", m.Schema)
	fmt.Fprintf(w, "  compression %s\n", m.Compression)
	if m.Device != "" {
		fmt.Fprintf(w, "  device      %s\n", m.Device)
	}
	fmt.Fprintf(w, "  created     %s\n", time.Unix(0, m.Created).UTC().Format(time.RFC3339Nano))
}

func printFrame(w io.Writer, i int, buf []byte, markers bool) {
	f := trackfb.GetRootAsFusionTrackFrame(buf, 0)
	fmt.Fprintf(w, "#%d frame counter=%d t=%.6fs device=%d error=%d fiducials=%d markers=%d bytes=%d\n",
		i, f.Counter(), f.Timestamp(), f.DeviceType(), f.FtkError(),
		f.ThreeDFiducialsLength(), f.MarkersLength(), len(buf))
	if !markers {
		return
	}
	var m trackfb.FtkMarker
	for j := 0; j < f.MarkersLength(); j++ {
		if !f.Markers(&m, j) {
			continue
		}
		pose := m.Transform(nil)
		if pose == nil {
			fmt.Fprintf(w, "    %q id=%d geometry=%d no pose\n", m.Name(), m.ID(), m.GeometryID())
			continue
		}
		p := pose.Value()
		fmt.Fprintf(w, "    %q id=%d geometry=%d mask=%v pos=(%.3f %.3f %.3f) q=(%.4f %.4f %.4f %.4f)\n",
			m.Name(), m.ID(), m.GeometryID(), m.GeometryPresenceMask(),
			p.Position.X, p.Position.Y, p.Position.Z,
			p.Orientation.X, p.Orientation.Y, p.Orientation.Z, p.Orientation.W)
	}
}

func printParameters(w io.Writer, i int, buf []byte) {
	p := trackfb.GetRootAsFusionTrackParameters(buf, 0)
	fmt.Fprintf(w, "#%d parameters name=%q geometries=%d markers=%d devices=%d\n",
		i, p.Name(), p.GeometriesLength(), p.MarkerIDsLength(), p.DeviceSerialNumbersLength())
	var g trackfb.FtkGeometry
	for j := 0; j < p.GeometriesLength(); j++ {
		if p.Geometries(&g, j) {
			fmt.Fprintf(w, "    geometry %d %q v%d points=%d\n", g.GeometryID(), g.Name(), g.Version(), g.PositionsLength())
		}
	}
}
