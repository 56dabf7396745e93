// Command wartsdump prints a summary of every object in one or more warts
// files, one line per object.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/dioptra-io/warts-go/address"
	"github.com/dioptra-io/warts-go/format"
	"github.com/dioptra-io/warts-go/object"
	"github.com/dioptra-io/warts-go/stream"
	mmap "github.com/edsrzf/mmap-go"
	"github.com/spf13/cobra"
)

// ipString renders an Address for display, falling back to a tagged
// placeholder for Reference/Ethernet/FireWire forms that don't carry an IP.
func ipString(a address.Address) string {
	if ip, ok := a.IPAddr(); ok {
		return ip.String()
	}
	return fmt.Sprintf("<kind=%d>", a.Kind)
}

var (
	dereferenceAddrs bool
	asJSON           bool
	strict           bool
)

func mapFile(path string) ([]byte, func() error, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}

	data, err := mmap.Map(f, mmap.RDONLY, 0)
	if err != nil {
		f.Close()
		return nil, nil, err
	}

	closeFn := func() error {
		if uerr := data.Unmap(); uerr != nil {
			f.Close()
			return uerr
		}
		return f.Close()
	}

	return data, closeFn, nil
}

func dumpFile(path string) error {
	data, closeFn, err := mapFile(path)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}
	defer closeFn()

	opts := []stream.DecodeOption{
		stream.WithStrict(strict),
		stream.WithDereference(dereferenceAddrs),
	}

	r, err := stream.NewReader(data, opts...)
	if err != nil {
		return fmt.Errorf("%s: %w", path, err)
	}

	for {
		obj, err := r.Next()
		if err != nil {
			return fmt.Errorf("%s: %w", path, err)
		}
		if obj == nil {
			return nil
		}

		printObject(obj)
	}
}

func printObject(obj *object.Object) {
	if asJSON {
		body := anyBody(obj)
		enc, err := json.Marshal(body)
		if err != nil {
			fmt.Fprintf(os.Stderr, "marshal %s: %v\n", obj.Type, err)
			return
		}
		fmt.Println(string(enc))
		return
	}

	switch obj.Type {
	case format.ObjectList:
		fmt.Printf("List id=%d name=%q\n", obj.List.ListID, obj.List.Name)
	case format.ObjectCycleStart:
		fmt.Printf("CycleStart id=%d\n", obj.CycleStart.CycleID)
	case format.ObjectCycleDefinition:
		fmt.Printf("CycleDefinition id=%d\n", obj.CycleDefinition.CycleID)
	case format.ObjectCycleStop:
		fmt.Printf("CycleStop id=%d\n", obj.CycleStop.CycleID)
	case format.ObjectAddressDeprecated:
		fmt.Printf("AddressDeprecated family=%s bytes=%x\n", obj.AddressDeprecated.Tag, obj.AddressDeprecated.Bytes)
	case format.ObjectTraceroute:
		tr := obj.Traceroute
		fmt.Printf("Traceroute src=%s dst=%s hops=%d\n", ipString(tr.SrcAddr), ipString(tr.DstAddr), len(tr.Hops))
	case format.ObjectPing:
		p := obj.Ping
		fmt.Printf("Ping src=%s dst=%s replies=%d\n", ipString(p.SrcAddr), ipString(p.DstAddr), len(p.Replies))
	case format.ObjectMultipathTraceroute:
		mt := obj.MultipathTraceroute
		fmt.Printf("MultipathTraceroute src=%s dst=%s nodes=%d links=%d\n",
			ipString(mt.SrcAddr), ipString(mt.DstAddr), len(mt.Nodes), len(mt.Links))
	default:
		fmt.Printf("%s (unrecognized)\n", obj.Type)
	}
}

func anyBody(obj *object.Object) any {
	switch obj.Type {
	case format.ObjectList:
		return obj.List
	case format.ObjectCycleStart:
		return obj.CycleStart
	case format.ObjectCycleDefinition:
		return obj.CycleDefinition
	case format.ObjectCycleStop:
		return obj.CycleStop
	case format.ObjectAddressDeprecated:
		return obj.AddressDeprecated
	case format.ObjectTraceroute:
		return obj.Traceroute
	case format.ObjectPing:
		return obj.Ping
	case format.ObjectMultipathTraceroute:
		return obj.MultipathTraceroute
	default:
		return nil
	}
}

func main() {
	dumpCmd := &cobra.Command{
		Use:   "wartsdump [file ...]",
		Short: "Dump the objects in one or more warts files",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, path := range args {
				if err := dumpFile(path); err != nil {
					return err
				}
			}
			return nil
		},
	}

	dumpCmd.Flags().BoolVar(&dereferenceAddrs, "dereference", false, "resolve address references and *_addr_id fields")
	dumpCmd.Flags().BoolVar(&asJSON, "json", false, "print each object as a JSON line instead of a summary")
	dumpCmd.Flags().BoolVar(&strict, "strict", true, "abort on the first unknown object type")

	if err := dumpCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
