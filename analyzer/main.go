package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"strings"

	"git.solver4all.com/azaryc2s/slotting"
)

func main() {
	if len(os.Args) < 2 {
		log.Printf("No arguments passed!")
		return
	}
	dirName := os.Args[1]
	dir, err := ioutil.ReadDir(dirName)
	if err != nil {
		log.Printf("Couldn't open directory %s: %s\n", os.Args[1], err.Error())
		return
	}
	fmt.Printf("Name,Status,Optimal,Time,Obj,LBound,Gap,Products,Classes,Locations,Comment\n")
	for _, f := range dir {
		fileName := dirName + "/" + f.Name()
		if strings.Contains(fileName, ".json") {
			inst := slotting.Instance{}
			instStr, err := ioutil.ReadFile(fileName)
			if err != nil {
				log.Printf("Couldn't read %s: %s\n", f.Name(), err.Error())
				return
			}
			err = json.Unmarshal(instStr, &inst)
			if err != nil {
				log.Printf("Couldn't parse %s: %s\n", f.Name(), err.Error())
				return
			}
			var sol slotting.Solution
			if inst.Solution != nil {
				sol = *inst.Solution
			}
			err = checkAssignment(inst, sol)
			if err != nil {
				sol.Comment += fmt.Sprintf("ANALYZER: Error = %s", err.Error())
			}
			gap := 0.0
			if sol.LBound != 0 {
				gap = 100.0 * ((sol.Obj - sol.LBound) / sol.LBound)
			}
			fmt.Printf("%s,%s,%t,%s,%.4f,%.4f,%.4f,%d,%d,%d,%s\n", inst.Name, sol.Status, sol.Optimal, sol.Time, sol.Obj, sol.LBound, gap, inst.Products, inst.Classes, inst.Locations, sol.Comment)
		}
	}
}

// checkAssignment re-validates a stored solution against the instance:
// every product in exactly one class, every location in at most one,
// class indices in range.
func checkAssignment(inst slotting.Instance, sol slotting.Solution) error {
	if sol.ProductClass == nil {
		return nil
	}
	if len(sol.ProductClass) != inst.Products {
		return errors.New(fmt.Sprintf("Expected %d product assignments, got %d!", inst.Products, len(sol.ProductClass)))
	}
	for p, c := range sol.ProductClass {
		if c < 0 || c >= inst.Classes {
			return errors.New(fmt.Sprintf("Product %d assigned to invalid class %d!", p, c))
		}
	}
	if len(sol.LocationClass) != inst.Locations {
		return errors.New(fmt.Sprintf("Expected %d location assignments, got %d!", inst.Locations, len(sol.LocationClass)))
	}
	for l, c := range sol.LocationClass {
		if c < -1 || c >= inst.Classes {
			return errors.New(fmt.Sprintf("Location %d assigned to invalid class %d!", l, c))
		}
	}
	return nil
}
