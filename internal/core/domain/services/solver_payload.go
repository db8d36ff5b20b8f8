package services

import (
	"fmt"
	"slices"

	"fueldispatch/internal/core/domain/model/delivery"
	"fueldispatch/internal/core/domain/model/kernel"
	"fueldispatch/internal/core/domain/model/product"
	"fueldispatch/internal/core/domain/model/vehicle"

	"fueldispatch/internal/pkg/errs"
)

// Fixed skill tags understood by the route solver.
const (
	SkillTankerVehicle = "tanker_vehicle"
	SkillFuelDelivery  = "fuel_delivery"
)

// hazmatSkill tags a shipment with its product's UN hazmat class.
// Unclassified products ride as class 3 flammable liquid, the norm for
// fuel grades.
func hazmatSkill(p *product.FuelProduct) string {
	class := p.HazmatClass()
	if class == "" || class == "0" {
		class = "3"
	}
	return "hazmat_class_" + class
}

// Planning constants for the solver payload: loading and discharge windows
// in minutes from midnight, the driver shift, and the weight share of the
// rated volume capacity.
const (
	shipmentPriority     = 5
	weightCapacityFactor = 0.8
)

var (
	depotLoadingWindow = [2]int{480, 600}  // 8:00-10:00
	dischargeWindow    = [2]int{600, 720}  // 10:00-12:00
	driverShiftWindow  = [2]int{360, 1080} // 6:00-18:00
)

// SolverStep is one pickup or delivery stop in a solver shipment.
type SolverStep struct {
	ID          string     `json:"id"`
	Location    [2]float64 `json:"location"`
	TimeWindows [][2]int   `json:"time_windows"`
	Description string     `json:"description"`
}

// SolverShipment is one compartment assignment expressed as a solver
// pickup/delivery pair. Amount is [weight kg, volume m³, shipment count].
type SolverShipment struct {
	Pickup   SolverStep `json:"pickup"`
	Delivery SolverStep `json:"delivery"`
	Amount   []float64  `json:"amount"`
	Skills   []string   `json:"skills"`
	Priority int        `json:"priority"`
}

// SolverVehicle is the tanker expressed as a solver vehicle. Capacity is
// [approximate weight kg, volume m³, max shipments].
type SolverVehicle struct {
	ID         string     `json:"id"`
	Profile    string     `json:"profile"`
	Start      [2]float64 `json:"start"`
	End        [2]float64 `json:"end"`
	Capacity   []float64  `json:"capacity"`
	Skills     []string   `json:"skills"`
	TimeWindow [2]int     `json:"time_window"`
}

// SolverPayload is the request body for the external route optimization
// engine.
type SolverPayload struct {
	Shipments []SolverShipment `json:"shipments"`
	Vehicles  []SolverVehicle  `json:"vehicles"`
}

// SolverPayloadBuilder is a domain service that turns a delivery and its
// vehicle into a payload for the route optimization engine. One shipment is
// produced per compartment assignment; the tanker appears as a single
// vehicle starting and ending at the depot.
type SolverPayloadBuilder struct{}

// NewSolverPayloadBuilder creates a new SolverPayloadBuilder instance.
func NewSolverPayloadBuilder() SolverPayloadBuilder {
	return SolverPayloadBuilder{}
}

// Build assembles the solver payload. products maps product IDs to the
// products carried by the delivery; destinations maps destination IDs to
// coordinates. A missing entry for any assignment is an error.
func (b SolverPayloadBuilder) Build(d *delivery.Delivery, veh *vehicle.TankerVehicle,
	products map[kernel.UUID]*product.FuelProduct,
	destinations map[kernel.UUID]kernel.GeoPoint,
	depot kernel.GeoPoint) (*SolverPayload, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	if err := veh.Validate(); err != nil {
		return nil, err
	}
	if err := depot.Validate(); err != nil {
		return nil, err
	}

	assignments := d.Assignments()
	shipments := make([]SolverShipment, 0, len(assignments))
	vehicleSkills := []string{SkillTankerVehicle, SkillFuelDelivery}
	for _, assignment := range assignments {
		p, ok := products[assignment.ProductID()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("productId", assignment.ProductID().String())
		}
		destination, ok := destinations[assignment.DestinationID()]
		if !ok {
			return nil, errs.NewObjectNotFoundError("destinationId", assignment.DestinationID().String())
		}

		shipments = append(shipments, SolverShipment{
			Pickup: SolverStep{
				ID:          "fuel-depot-loading",
				Location:    depot.LonLat(),
				TimeWindows: [][2]int{depotLoadingWindow},
				Description: "Fuel depot loading",
			},
			Delivery: SolverStep{
				ID:          fmt.Sprintf("delivery-%s", assignment.DestinationID()),
				Location:    destination.LonLat(),
				TimeWindows: [][2]int{dischargeWindow},
				Description: fmt.Sprintf("Fuel delivery - %s", p.Name()),
			},
			Amount: []float64{
				float64(int(assignment.WeightKg())),
				float64(assignment.VolumeLiters()) / 1000,
				1,
			},
			Skills: []string{
				hazmatSkill(p),
				SkillTankerVehicle,
				SkillFuelDelivery,
				fmt.Sprintf("fuel_type_%s", p.FuelType()),
			},
			Priority: shipmentPriority,
		})
		if !slices.Contains(vehicleSkills, hazmatSkill(p)) {
			vehicleSkills = append(vehicleSkills, hazmatSkill(p))
		}
	}

	return &SolverPayload{
		Shipments: shipments,
		Vehicles: []SolverVehicle{
			{
				ID:      fmt.Sprintf("tanker-%s", veh.ID()),
				Profile: "driving",
				Start:   depot.LonLat(),
				End:     depot.LonLat(),
				Capacity: []float64{
					float64(int(float64(veh.TotalCapacityLiters()) * weightCapacityFactor)),
					float64(veh.TotalCapacityLiters()) / 1000,
					float64(veh.CompartmentCount()),
				},
				Skills:     vehicleSkills,
				TimeWindow: driverShiftWindow,
			},
		},
	}, nil
}
