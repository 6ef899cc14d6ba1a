package osm2pt

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/paulmach/osm"
	"github.com/paulmach/osm/osmpbf"
	"github.com/paulmach/osm/osmxml"
	"github.com/pkg/errors"
)

type OSMScanner interface {
	Scan() bool
	Close() error
	Err() error
	Object() osm.Object
}

type OSMDataRaw struct {
	routes  *RouteIndex
	nodes   map[osm.NodeID]*Node
	waysRaw []*WayData
}

// newScanner guesses file extension and prepares correct scanner
func newScanner(filename string, file io.Reader) (OSMScanner, error) {
	switch {
	case strings.HasSuffix(filename, ".osm.pbf"), filepath.Ext(filename) == ".pbf":
		return osmpbf.New(context.Background(), file, 4), nil
	case filepath.Ext(filename) == ".osm", filepath.Ext(filename) == ".xml":
		return osmxml.New(context.Background(), file), nil
	default:
		return nil, fmt.Errorf("File extension '%s' for file '%s' is not handled yet", filepath.Ext(filename), filename)
	}
}

func readOSM(filename string, verbose bool) (*OSMDataRaw, error) {
	if verbose {
		fmt.Printf("Opening file: '%s'...\n", filename)
	}
	// Open file
	file, err := os.Open(filename)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	/* Process relations. Routes should be known before ways are scanned */
	if verbose {
		fmt.Printf("\tProcessing relations... ")
	}
	st := time.Now()
	routes := NewRouteIndex()
	skippedRelations := 0
	{
		scannerRelations, err := newScanner(filename, file)
		if err != nil {
			return nil, err
		}
		defer scannerRelations.Close()

		for scannerRelations.Scan() {
			obj := scannerRelations.Object()
			if obj.ObjectID().Type() != osm.TypeRelation {
				continue
			}
			relation := obj.(*osm.Relation)
			rel, ok := IdentifyRelation(relation)
			if !ok {
				skippedRelations++
				continue
			}
			routes.Add(rel, relation.Members)
		}
		err = scannerRelations.Err()
		if err != nil {
			return nil, err
		}
	}
	if verbose {
		fmt.Printf("Done in %v\n", time.Since(st))
	}

	// Seek file to start
	_, err = file.Seek(0, io.SeekStart)
	if err != nil {
		return nil, errors.Wrap(err, "Can't repeat seeking after relations scanning")
	}

	/* Process ways */
	if verbose {
		fmt.Printf("\tProcessing ways... ")
	}
	st = time.Now()
	ways := []*WayData{}
	nodesSeen := make(map[osm.NodeID]struct{})
	{
		scannerWays, err := newScanner(filename, file)
		if err != nil {
			return nil, err
		}
		defer scannerWays.Close()

		for scannerWays.Scan() {
			obj := scannerWays.Object()
			if obj.ObjectID().Type() != osm.TypeWay {
				continue
			}
			way := obj.(*osm.Way)
			// Ignore ways which are not members of any route
			if !routes.HasWay(way.ID) {
				continue
			}
			preparedWay := &WayData{
				ID:     way.ID,
				Nodes:  make([]osm.NodeID, 0, len(way.Nodes)),
				TagMap: make(osm.Tags, len(way.Tags)),
			}
			copy(preparedWay.TagMap, way.Tags)
			for _, node := range way.Nodes {
				nodesSeen[node.ID] = struct{}{}
				preparedWay.Nodes = append(preparedWay.Nodes, node.ID)
			}
			// Call tags flattening to make further processing easier
			preparedWay.processTags(verbose)
			ways = append(ways, preparedWay)
		}
		err = scannerWays.Err()
		if err != nil {
			return nil, err
		}
	}
	if verbose {
		fmt.Printf("Done in %v\n", time.Since(st))
	}

	// Seek file to start
	_, err = file.Seek(0, io.SeekStart)
	if err != nil {
		return nil, errors.Wrap(err, "Can't repeat seeking after ways scanning")
	}

	/* Process nodes */
	if verbose {
		fmt.Printf("\tProcessing nodes... ")
	}
	st = time.Now()
	nodes := make(map[osm.NodeID]*Node)
	{
		scannerNodes, err := newScanner(filename, file)
		if err != nil {
			return nil, err
		}
		defer scannerNodes.Close()

		for scannerNodes.Scan() {
			obj := scannerNodes.Object()
			if obj.ObjectID().Type() != osm.TypeNode {
				continue
			}
			node := obj.(*osm.Node)
			if _, ok := nodesSeen[node.ID]; ok {
				delete(nodesSeen, node.ID)
				nodes[node.ID] = &Node{
					node: *node,
					ID:   node.ID,
				}
			}
		}
		err = scannerNodes.Err()
		if err != nil {
			return nil, err
		}
	}
	if verbose {
		fmt.Printf("Done in %v\n", time.Since(st))
	}

	if verbose {
		fmt.Printf("Number of route relations: %d\n", len(routes.Relations()))
		fmt.Printf("Number of distinct routes: %d\n", routes.RoutesNum())
		fmt.Printf("Skipped relations (not a public transport route): %d\n", skippedRelations)
		fmt.Printf("Number of member ways: %d\n", len(ways))
		fmt.Printf("Number of nodes: %d\n", len(nodes))
	}

	return &OSMDataRaw{
		routes:  routes,
		nodes:   nodes,
		waysRaw: ways,
	}, nil
}

// prepareFragments builds linear fragments from member ways.
// In strict mode a way with missing nodes is an error, otherwise such way is skipped
func (data *OSMDataRaw) prepareFragments(strictMode, verbose bool) ([]*Fragment, error) {
	if verbose {
		fmt.Printf("Preparing fragments...")
	}
	st := time.Now()
	fragments := make([]*Fragment, 0, len(data.waysRaw))
	for _, way := range data.waysRaw {
		if len(way.Nodes) < 2 {
			if verbose {
				fmt.Printf("\n\t[WARNING]: Way with %d nodes met. Way ID: '%d'\n", len(way.Nodes), way.ID)
			}
			continue
		}
		fragment, err := way.toFragment(data.nodes)
		if err != nil {
			if strictMode {
				return nil, errors.Wrap(err, "Can't prepare fragment")
			}
			if verbose {
				fmt.Printf("\n\t[WARNING]: %s. Skip it\n", err.Error())
			}
			continue
		}
		if !fragment.IsLinear() {
			continue
		}
		fragments = append(fragments, fragment)
	}
	if verbose {
		fmt.Printf("Done in %v\n", time.Since(st))
	}
	return fragments, nil
}
