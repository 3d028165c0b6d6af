package osmparser

import (
	"strings"

	"github.com/paulmach/osm"

	"lintang/mapagent/pkg/datastructure"
)

func isRestricted(value string) bool {
	switch value {
	case "no", "restricted", "military", "emergency", "private", "permit":
		return true
	}
	return false
}

func isRoundabout(way *osm.Way) bool {
	junction := way.Tags.Find("junction")
	return junction == "roundabout" || junction == "circular"
}

// wayFlow traversal permission of the way relative to its node order.
// drivable=false when both directions are closed to vehicles.
func wayFlow(way *osm.Way) (datastructure.Flow, bool) {
	forwardClosed := isRestricted(way.Tags.Find("vehicle:forward")) || isRestricted(way.Tags.Find("motor_vehicle:forward"))
	backwardClosed := isRestricted(way.Tags.Find("vehicle:backward")) || isRestricted(way.Tags.Find("motor_vehicle:backward"))

	switch way.Tags.Find("oneway") {
	case "yes", "1", "true":
		backwardClosed = true
	case "-1", "reverse":
		forwardClosed = true
	case "no", "0", "false":
	default:
		highway := way.Tags.Find("highway")
		if isRoundabout(way) || highway == "motorway" || highway == "motorway_link" {
			backwardClosed = true
		}
	}

	switch {
	case forwardClosed && backwardClosed:
		return datastructure.FlowForwardOnly, false
	case forwardClosed:
		return datastructure.FlowReverseOnly, true
	case backwardClosed:
		return datastructure.FlowForwardOnly, true
	default:
		return datastructure.FlowTwoWay, true
	}
}

func wayFow(way *osm.Way) datastructure.FOW {
	highway := way.Tags.Find("highway")
	switch {
	case isRoundabout(way):
		return datastructure.FowRoundabout
	case way.Tags.Find("area") == "yes":
		return datastructure.FowTrafficSquare
	case highway == "motorway":
		return datastructure.FowMotorway
	case strings.HasSuffix(highway, "_link"):
		return datastructure.FowSlipRoad
	case highway == "trunk" || highway == "primary":
		// dual carriageways are mapped as two one way ways
		if way.Tags.Find("oneway") == "yes" || way.Tags.Find("dual_carriageway") == "yes" {
			return datastructure.FowMultipleCarriageway
		}
		return datastructure.FowSingleCarriageway
	case highway == "secondary", highway == "tertiary", highway == "unclassified", highway == "residential",
		highway == "living_street", highway == "road":
		return datastructure.FowSingleCarriageway
	case highway == "":
		return datastructure.FowUndefined
	default:
		return datastructure.FowOther
	}
}

func wayFrc(highway string) datastructure.FRC {
	switch strings.TrimSuffix(highway, "_link") {
	case "motorway":
		return datastructure.FRC0
	case "trunk":
		return datastructure.FRC1
	case "primary":
		return datastructure.FRC2
	case "secondary":
		return datastructure.FRC3
	case "tertiary":
		return datastructure.FRC4
	case "unclassified", "residential":
		return datastructure.FRC5
	case "living_street", "service":
		return datastructure.FRC6
	default:
		return datastructure.FRC7
	}
}
