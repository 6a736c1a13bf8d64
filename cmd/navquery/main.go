package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"gonavquery/common"
	"gonavquery/common/rw"
	"gonavquery/config"
	"gonavquery/debug_utils"
	"gonavquery/logger"
	"gonavquery/mesh"
	"gonavquery/navmesh"

	"go.uber.org/zap"
)

func main() {
	var (
		configPath = flag.String("config", "", "engine config file (yaml)")
		meshPath   = flag.String("mesh", "", "navmesh data file (.nav)")
		worldId    = flag.Uint("world", 0, "world id to load the mesh into")
		startArg   = flag.String("start", "", "start position x,y,z")
		endArg     = flag.String("end", "", "end position x,y,z")
		dumpPath   = flag.String("dump", "", "write the loaded mesh as OBJ to this path")
	)
	flag.Parse()

	cfg := config.Default()
	if *configPath != "" {
		var err error
		cfg, err = config.Load(*configPath)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
	}

	log, err := logger.New(cfg.Log)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer log.Sync()

	system := navmesh.NewNavMeshSystem(cfg.PoolSize, log)
	system.SetNavMeshParams(cfg.CheckNavMeshBottom, cfg.CheckNavMeshTop)
	system.SetDrawNavMesh(cfg.DrawNavMesh)
	system.SetDefaultOptions(cfg.PathFindOptions())

	if *meshPath == "" {
		fmt.Fprintln(os.Stderr, "missing -mesh")
		os.Exit(2)
	}
	data, err := mesh.LoadFromFile(*meshPath)
	if err != nil {
		log.Fatal("load navmesh", zap.Error(err))
	}
	system.LoadNavMesh(data, uint32(*worldId))

	if *dumpPath != "" {
		w := rw.NewNavMeshDataBinWriter()
		debug_utils.DuDumpNavMeshToObj(system.Polygons(), w)
		if err := os.WriteFile(*dumpPath, w.GetWriteBytes(), 0o644); err != nil {
			log.Fatal("write obj dump", zap.Error(err))
		}
		log.Info("obj dump written", zap.String("path", *dumpPath))
	}

	if *startArg == "" || *endArg == "" {
		return
	}
	start, err := parseVec3(*startArg)
	if err != nil {
		log.Fatal("parse -start", zap.Error(err))
	}
	end, err := parseVec3(*endArg)
	if err != nil {
		log.Fatal("parse -end", zap.Error(err))
	}

	var path navmesh.NavMeshPath
	result := system.FindPath(start, end, &path, nil)
	fmt.Println(result)
	for i, wp := range path.Waypoints {
		fmt.Printf("%3d poly %d  (%.2f, %.2f, %.2f)\n", i, wp.PolyId, wp.Pos.X(), wp.Pos.Y(), wp.Pos.Z())
	}
	if !result.Succeeded() {
		os.Exit(1)
	}
}

func parseVec3(s string) (common.Vec3, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 {
		return common.Vec3{}, fmt.Errorf("want x,y,z got %q", s)
	}
	var v common.Vec3
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return common.Vec3{}, err
		}
		v[i] = float32(f)
	}
	return v, nil
}
