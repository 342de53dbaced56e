package shapesim_test

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/hupe1980/shapesim"
	"github.com/hupe1980/shapesim/codec"
	"github.com/hupe1980/shapesim/mesh"
	"github.com/hupe1980/shapesim/testutil"
)

// Example_findSimilar demonstrates indexing meshes and ranking by similarity.
func Example_findSimilar() {
	ctx := context.Background()
	eng := shapesim.New()

	for _, m := range []mesh.RawMesh{
		testutil.Cube("cube", 1),
		testutil.Cube("dice", 1),
		testutil.Box("brick", 1, 1, 2),
		testutil.Plane("sheet", 1, 1),
	} {
		if _, err := eng.Add(ctx, m); err != nil {
			log.Fatal(err)
		}
	}

	results, err := eng.FindSimilar(ctx, "cube", 5)
	if err != nil {
		log.Fatal(err)
	}

	for _, r := range results {
		fmt.Printf("%s %d\n", r.Name, r.Similarity)
	}
	// Output:
	// dice 100
	// brick 73
	// sheet 7
}

// Example_features demonstrates the descriptors computed for a unit cube.
func Example_features() {
	eng := shapesim.New()

	v, err := eng.Add(context.Background(), testutil.Cube("cube", 1))
	if err != nil {
		log.Fatal(err)
	}

	fmt.Printf("vertices=%d faces=%d volume=%.0f area=%.0f aspect=%.0f compactness=%.4f\n",
		v.VertexCount, v.FaceCount, v.Volume, v.SurfaceArea, v.AspectRatio, v.Compactness)
	// Output: vertices=36 faces=12 volume=1 area=6 aspect=1 compactness=0.1667
}

// Example_noGeometry demonstrates rejecting an empty mesh.
func Example_noGeometry() {
	eng := shapesim.New()

	_, err := eng.Add(context.Background(), mesh.RawMesh{Name: "empty"})
	fmt.Println(errors.Is(err, shapesim.ErrNoGeometry))
	fmt.Println(eng.Stats().Shapes)
	// Output:
	// true
	// 0
}

// Example_export demonstrates serializing ranked results for an exporter.
func Example_export() {
	ctx := context.Background()
	eng := shapesim.New()

	_, _ = eng.Add(ctx, testutil.Cube("cube", 1))
	_, _ = eng.Add(ctx, testutil.Box("brick", 1, 1, 2))

	query, results, err := eng.FindSimilarToMesh(ctx, testutil.Cube("upload", 1), 1)
	if err != nil {
		log.Fatal(err)
	}

	data, err := codec.EncodeReport(codec.JSON{}, query, results)
	if err != nil {
		log.Fatal(err)
	}

	report, err := codec.DecodeReport(codec.JSON{}, data)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(report.Query.Name, report.Results[0].Name, report.Results[0].Similarity)
	// Output: upload cube 100
}
