// Command loransacfit fits a plane to a point cloud with Locally Optimized
// RANSAC, optionally downsampling first and restricting the fit to a
// voxel-grid neighborhood around a seed point.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/google/uuid"

	pcgolmat "github.com/seqsense/pcgol/mat"
	"github.com/seqsense/pcgol/pc"
	"github.com/seqsense/pcgol/pc/filter/voxelgrid"
	segvoxelgrid "github.com/seqsense/pcgol/pc/segmentation/voxelgrid"

	rmat "github.com/robovision/loransac/mat"
	"github.com/robovision/loransac/planefit"
	"github.com/robovision/loransac/ransac"
	"github.com/robovision/loransac/ransacconfig"
)

func main() {
	input := flag.String("input", "", "path to a .pcd file (required)")
	configPath := flag.String("config", "", "optional YAML file with LO-RANSAC options")
	voxelLeaf := flag.Float64("voxel-leaf", 0, "voxel-grid downsampling leaf size in meters; 0 disables downsampling")
	segmentSeed := flag.String("segment-seed", "", "x,y,z seed point; restricts fitting to the voxel-grid neighborhood around it")
	segResolution := flag.Float64("segment-resolution", 0.1, "voxel resolution of the neighborhood grid around the segmentation seed")
	segmentRange := flag.Float64("segment-range", 5, "side length in meters of the cube searched around the segmentation seed")
	flag.Parse()

	if *input == "" {
		log.Fatal("loransacfit: -input is required")
	}

	runID := uuid.New().String()
	log.Printf("run %s: fitting plane for %s", runID, *input)

	opts := ransac.NewLORansacOptions()
	if *configPath != "" {
		var err error
		opts, err = ransacconfig.LoadFile(*configPath)
		if err != nil {
			log.Fatalf("run %s: loading config: %v", runID, err)
		}
	}

	points, err := loadPoints(*input, *voxelLeaf, *segmentSeed, float32(*segResolution), float32(*segmentRange))
	if err != nil {
		log.Fatalf("run %s: %v", runID, err)
	}
	log.Printf("run %s: %d points after preprocessing", runID, len(points))

	solver := &planefit.Solver{Points: points}
	model, stats, numInliers := ransac.EstimateModel(opts, solver)
	if model == nil {
		log.Fatalf("run %s: no plane found (insufficient data or degenerate samples)", runID)
	}

	m := model.(planefit.Model)
	log.Printf("run %s: plane normal=%v d=%v inliers=%d/%d (ratio %.3f) iterations=%d score=%.4f",
		runID, m.Normal, m.D, numInliers, len(points), stats.InlierRatio, stats.NumIterations, stats.BestModelScore)

	fmt.Printf("normal: %.6f %.6f %.6f\n", m.Normal[0], m.Normal[1], m.Normal[2])
	fmt.Printf("d: %.6f\n", m.D)
	fmt.Printf("inliers: %d/%d\n", numInliers, len(points))
}

// loadPoints reads a PCD file via pcgol/pc, optionally downsamples it with
// a voxel-grid filter, and optionally restricts it to the voxel-grid
// neighborhood around a seed point, returning plain points for planefit.
func loadPoints(path string, voxelLeaf float64, segmentSeed string, segResolution, segmentRange float32) ([]rmat.Vec3, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	pp, err := pc.Unmarshal(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}

	if voxelLeaf > 0 {
		leaf := pcgolmat.Vec3{float32(voxelLeaf), float32(voxelLeaf), float32(voxelLeaf)}
		filtered, err := voxelgrid.New(leaf).Filter(pp)
		if err != nil {
			return nil, fmt.Errorf("downsampling: %w", err)
		}
		pp = filtered
	}

	if segmentSeed != "" {
		seed, err := parseSeed(segmentSeed)
		if err != nil {
			return nil, err
		}
		points, err := neighborhoodPoints(pp, seed, segResolution, segmentRange)
		if err != nil {
			return nil, fmt.Errorf("segmenting: %w", err)
		}
		return points, nil
	}

	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, fmt.Errorf("iterating points: %w", err)
	}
	points := make([]rmat.Vec3, 0, pp.Points)
	for ; it.IsValid(); it.Incr() {
		v := it.Vec3()
		points = append(points, rmat.Vec3{v[0], v[1], v[2]})
	}
	return points, nil
}

func parseSeed(s string) (pcgolmat.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return pcgolmat.Vec3{}, fmt.Errorf("segment-seed must be x,y,z, got %q", s)
	}
	var v pcgolmat.Vec3
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return pcgolmat.Vec3{}, fmt.Errorf("segment-seed: %w", err)
		}
		v[i] = float32(f)
	}
	return v, nil
}

// neighborhoodPoints keeps only the points that fall inside a voxel-grid
// cube of side rng centered on seed, the same voxel-grid addressing the
// editor uses to scope a local surface fit before excluding it from a
// selection.
func neighborhoodPoints(pp *pc.PointCloud, seed pcgolmat.Vec3, resolution, rng float32) ([]rmat.Vec3, error) {
	w := int(rng/resolution) + 1
	half := float32(w) * resolution / 2
	vg := segvoxelgrid.New(resolution, [3]int{w, w, w}, seed.Sub(pcgolmat.Vec3{half, half, half}))

	it, err := pp.Vec3Iterator()
	if err != nil {
		return nil, err
	}
	for i := 0; i < pp.Points; i++ {
		if a, ok := vg.Addr(it.Vec3()); ok {
			vg.AddByAddr(a, i)
		}
		it.Incr()
	}

	it, err = pp.Vec3Iterator()
	if err != nil {
		return nil, err
	}
	ra := pc.NewIndiceVec3RandomAccessor(it, vg.Storage().Indice())
	points := make([]rmat.Vec3, ra.Len())
	for i := range points {
		v := ra.Vec3At(i)
		points[i] = rmat.Vec3{v[0], v[1], v[2]}
	}
	return points, nil
}
