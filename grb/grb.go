// Package grb solves slotting models with Gurobi through the gorobi
// binding. It needs a configured Gurobi installation and license.
package grb

import (
	"fmt"

	"git.solver4all.com/azaryc2s/gorobi/gurobi"

	"git.solver4all.com/azaryc2s/slotting"
)

// Backend runs one model per Solve call through its own Gurobi
// environment. LogFile names the Gurobi log; empty disables it.
type Backend struct {
	LogFile      string
	LogToConsole bool
}

func (b *Backend) Solve(m *slotting.Model, opts slotting.SolveOptions) (*slotting.Result, error) {
	env, err := gurobi.LoadEnv(b.LogFile)
	if err != nil {
		return nil, err
	}
	defer env.Free()
	if !b.LogToConsole {
		env.SetIntParam("LogToConsole", int32(0))
	}
	if opts.TimeLimit > 0 {
		err = env.SetDblParam("TimeLimit", opts.TimeLimit.Seconds())
		if err != nil {
			return nil, err
		}
	}

	model, err := env.NewModel(m.Name, 0, nil, nil, nil, nil, nil)
	if err != nil {
		return nil, err
	}
	defer model.Free()

	for _, v := range m.Vars {
		var vtype int8
		if v.Type == slotting.Binary {
			vtype = gurobi.BINARY
		} else {
			vtype = gurobi.CONTINUOUS
		}
		err = model.AddVar(nil, nil, v.Obj, v.Lower, v.Upper, vtype, v.Name)
		if err != nil {
			return nil, fmt.Errorf("adding variable %s: %w", v.Name, err)
		}
	}

	err = model.SetIntAttr(gurobi.INT_ATTR_MODELSENSE, gurobi.MINIMIZE)
	if err != nil {
		return nil, err
	}

	for _, c := range m.Constrs {
		err = model.AddConstr(c.Ind, c.Val, senseOf(c), c.RHS, c.Name)
		if err != nil {
			return nil, fmt.Errorf("adding constraint %s: %w", c.Name, err)
		}
	}

	err = model.Optimize()
	if err != nil {
		return nil, err
	}

	optimstatus, err := model.GetIntAttr(gurobi.INT_ATTR_STATUS)
	if err != nil {
		return nil, err
	}

	res := &slotting.Result{}
	switch optimstatus {
	case gurobi.OPTIMAL:
		res.Status = slotting.StatusOptimal
	case gurobi.INFEASIBLE, gurobi.INF_OR_UNBD:
		res.Status = slotting.StatusInfeasible
		return res, nil
	case gurobi.TIME_LIMIT:
		res.Status = slotting.StatusFeasible
	default:
		res.Status = slotting.StatusError
		return res, nil
	}

	res.Obj, err = model.GetDblAttr(gurobi.DBL_ATTR_OBJVAL)
	if err != nil {
		// TIME_LIMIT without an incumbent has no objective to read
		if res.Status == slotting.StatusFeasible {
			res.Status = slotting.StatusTimeout
			return res, nil
		}
		return nil, err
	}
	res.Bound, err = model.GetDblAttr(gurobi.DBL_ATTR_OBJBOUND)
	if err != nil {
		res.Bound = res.Obj
	}
	res.Values, err = model.GetDblAttrArray(gurobi.DBL_ATTR_X, 0, int32(len(m.Vars)))
	if err != nil {
		return nil, err
	}
	return res, nil
}

func senseOf(c slotting.Constraint) int8 {
	switch c.Sense {
	case slotting.LessEqual:
		return gurobi.LESS_EQUAL
	case slotting.GreaterEqual:
		return gurobi.GREATER_EQUAL
	default:
		return gurobi.EQUAL
	}
}
