package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"io/ioutil"
	"log"
	"strings"
	"time"

	"github.com/shirou/gopsutil/cpu"
	"github.com/shirou/gopsutil/host"
	"github.com/shirou/gopsutil/mem"

	"git.solver4all.com/azaryc2s/slotting"
	"git.solver4all.com/azaryc2s/slotting/bnb"
	"git.solver4all.com/azaryc2s/slotting/grb"
)

const (
	BACKEND_GRB = "GRB"
	BACKEND_BNB = "BNB"
)

var (
	inst slotting.Instance
	sol  slotting.Solution

	inputF    *string
	outputF   *string
	backendF  *string
	timeLimit *float64
	writeLP   *bool
)

func main() {
	var err error

	inputF = flag.String("input", "input.json", "Path to the input instance")
	outputF = flag.String("output", "", "Path to the output file. By default the input file will be overwritten adding the solution")
	backendF = flag.String("backend", BACKEND_GRB, "Solver backend. GRB (default) or BNB")
	timeLimit = flag.Float64("timelimit", 0, "Time limit in seconds. 0 means no limit")
	writeLP = flag.Bool("lp", true, "Whether to write the model as an .lp file next to the input")

	flag.Parse()

	hostStat, _ := host.Info()
	cpuStat, _ := cpu.Info()
	vmStat, _ := mem.VirtualMemory()
	sol = slotting.Solution{Comment: "", System: slotting.SysInfo{hostStat.Platform, cpuStat[0].ModelName, fmt.Sprintf("%d GB", (vmStat.Total / 1024 / 1024 / 1024))}}

	instStr, err := ioutil.ReadFile(*inputF)
	if err != nil {
		log.Printf("At %s: %s\n", *inputF, err.Error())
		return
	}

	err = json.Unmarshal(instStr, &inst)
	if err != nil {
		log.Printf("At %s: %s\n", *inputF, err.Error())
		return
	}
	inst.Solution = &sol

	params, err := slotting.LoadInstance(inst)
	if err != nil {
		log.Printf("At %s: %s\n", *inputF, err.Error())
		return
	}

	log.Println("Building the model...")
	model, err := slotting.BuildModel(params)
	if err != nil {
		log.Printf("At %s: %s\n", *inputF, err.Error())
		return
	}

	if *writeLP {
		lpName := strings.ReplaceAll(*inputF, ".json", ".lp")
		err = model.WriteLP(lpName)
		if err != nil {
			log.Printf("At %s: %s\n", lpName, err.Error())
			return
		}
	}

	var solver slotting.Solver
	if *backendF == BACKEND_GRB {
		solver = &grb.Backend{LogFile: "slotting-grb.log"}
	} else if *backendF == BACKEND_BNB {
		solver = &bnb.Solver{}
	} else {
		log.Printf("Unsupported backend: %s\n", *backendF)
		return
	}

	opts := slotting.SolveOptions{TimeLimit: time.Duration(*timeLimit * float64(time.Second))}

	startTime := time.Now()
	res, err := solver.Solve(model, opts)
	sol.Time = time.Since(startTime).String()
	if err != nil {
		log.Printf("At %s: %s\n", *inputF, err.Error())
		return
	}
	log.Println("\n---OPTIMIZATION DONE---\n\t Generating and writing result now\n")
	defer writeSolution()

	sol.Status = res.Status.String()
	if res.Status == slotting.StatusOptimal {
		sol.Optimal = true
	} else if res.Status == slotting.StatusInfeasible {
		fmt.Printf("Model for %s is infeasible\n", *inputF)
		return
	} else if res.Status == slotting.StatusFeasible {
		sol.Comment += "Time limit reached - solution not proven optimal. "
	} else if res.Status == slotting.StatusTimeout {
		sol.Comment += "Time limit reached before any solution was found. "
		return
	} else {
		sol.Comment += "The optimization stopped without an optimal solution. "
		return
	}

	sol.Obj = res.Obj
	sol.LBound = res.Bound

	a, err := slotting.Extract(model, res)
	if err != nil {
		sol.Comment += fmt.Sprintf("Couldn't extract the assignment: %s. ", err.Error())
		log.Printf("At %s: %s\n", *inputF, sol.Comment)
		return
	}
	sol.ProductClass = a.ProductClass
	sol.LocationClass = a.LocationClass

	counts := a.ClassLocationCount(params.Classes)
	fmt.Printf("Found an assignment with objective %.4f; locations per class: %v, idle: %d\n",
		res.Obj, counts, len(a.IdleLocations()))
}

func writeSolution() {
	jsonInst, err := json.MarshalIndent(inst, "", "\t")
	if err != nil {
		log.Printf("At %s: %s\n", *inputF, err.Error())
		return
	}
	jsonInst = []byte(slotting.SanitizeJsonArrayLineBreaks(string(jsonInst)))
	fileName := *outputF
	if fileName == "" {
		fileName = *inputF
	}
	err = ioutil.WriteFile(fileName, jsonInst, 0644)
	if err != nil {
		log.Printf("At %s: %s\n", fileName, err.Error())
		return
	}
}
