package seeders

import "equipment-system/internal/dataservice"

// Symbolic keys for cross-references between seed rows. The stores generate
// their own identifiers, so the seeder replaces these keys with the real ids
// as rows are created.
const (
	teamSim        = "team:sim"
	teamTraining   = "team:training"
	teamClinical   = "team:clinical"
	teamBiomedical = "team:biomedical"

	personAlice = "person:alice"
	personBob   = "person:bob"
	personCarol = "person:carol"
	personDan   = "person:dan"
	personEve   = "person:eve"
	personFrank = "person:frank"
	personGrace = "person:grace"
	personHank  = "person:hank"

	buildingMain  = "building:main"
	buildingAnnex = "building:annex"

	levelMainG  = "level:main-ground"
	levelMain1  = "level:main-1"
	levelMain2  = "level:main-2"
	levelAnnexG = "level:annex-ground"

	locSimLab       = "location:sim-lab"
	locTrainingRoom = "location:training-room"
	locStoreRoom    = "location:store-room"
	locSkillsLab    = "location:skills-lab"
	locAnnexStore   = "location:annex-store"
	locWorkshop     = "location:workshop"

	equipSimKit       = "equipment:sim-kit"
	equipManikin      = "equipment:manikin"
	equipDefibTrainer = "equipment:defib-trainer"
	equipUltrasound   = "equipment:ultrasound"
	equipAirwayKit    = "equipment:airway-kit"
	equipIVArm        = "equipment:iv-arm"
	equipTaskTrainer  = "equipment:task-trainer"
	equipBPSim        = "equipment:bp-sim"
	equipSuturePad    = "equipment:suture-pad"
	equipVentilator   = "equipment:ventilator"
	equipProjector    = "equipment:projector"
	equipCamera       = "equipment:camera"

	pmtManikin = "pmtemplate:manikin"
)

const airwayKitFlowChart = `{"version":1,"nodes":[` +
	`{"id":"n1","type":"start","position":{"x":250,"y":0},"data":{"label":"Start"}},` +
	`{"id":"n2","type":"step","position":{"x":250,"y":100},"data":{"label":"Unpack Kit","description":"Remove all components from carry case"}},` +
	`{"id":"n3","type":"step","position":{"x":250,"y":200},"data":{"label":"Inspect Head","description":"Check intubation head for damage"}},` +
	`{"id":"n4","type":"decision","position":{"x":250,"y":300},"data":{"label":"Head OK?"}},` +
	`{"id":"n5","type":"step","position":{"x":50,"y":400},"data":{"label":"Report Damage","description":"Lodge maintenance request"}},` +
	`{"id":"n6","type":"step","position":{"x":250,"y":400},"data":{"label":"Attach Laryngoscope","description":"Connect blade to handle, test light"}},` +
	`{"id":"n7","type":"step","position":{"x":250,"y":500},"data":{"label":"Position Airway Adjuncts","description":"Lay out OPA/NPA sizes on tray"}},` +
	`{"id":"n8","type":"end","position":{"x":250,"y":600},"data":{"label":"Ready"}}],` +
	`"edges":[` +
	`{"id":"e1","source":"n1","target":"n2","animated":true},` +
	`{"id":"e2","source":"n2","target":"n3"},` +
	`{"id":"e3","source":"n3","target":"n4"},` +
	`{"id":"e4","source":"n4","target":"n5","label":"No"},` +
	`{"id":"e5","source":"n4","target":"n6","label":"Yes"},` +
	`{"id":"e6","source":"n6","target":"n7"},` +
	`{"id":"e7","source":"n7","target":"n8"}]}`

const airwayKitContents = `[` +
	`{"id":"c1","label":"Intubation Head","checked":false,"sortOrder":0},` +
	`{"id":"c2","label":"Laryngoscope Set","checked":false,"sortOrder":1},` +
	`{"id":"c3","label":"Airway Adjuncts (OPA set)","checked":false,"sortOrder":2},` +
	`{"id":"c4","label":"Airway Adjuncts (NPA set)","checked":false,"sortOrder":3},` +
	`{"id":"c5","label":"Lubricant Gel","checked":false,"sortOrder":4},` +
	`{"id":"c6","label":"Carry Case","checked":false,"sortOrder":5}]`

// row pairs a symbolic key with the field values to create. Rows that nothing
// references leave the key empty.
type row struct {
	key    string
	fields dataservice.Fields
}

var seedBuildings = []row{
	{buildingMain, dataservice.Fields{"name": "Main Education Centre", "code": "MEC"}},
	{buildingAnnex, dataservice.Fields{"name": "Annex Building", "code": "ANX"}},
}

var seedLevels = []row{
	{levelMainG, dataservice.Fields{"buildingId": buildingMain, "name": "Ground Floor", "sortOrder": 0}},
	{levelMain1, dataservice.Fields{"buildingId": buildingMain, "name": "Level 1", "sortOrder": 1}},
	{levelMain2, dataservice.Fields{"buildingId": buildingMain, "name": "Level 2", "sortOrder": 2}},
	{levelAnnexG, dataservice.Fields{"buildingId": buildingAnnex, "name": "Ground Floor", "sortOrder": 0}},
}

// Persons are created without teamId and linked once teams exist, breaking
// the Person to Team to Location to Person reference cycle. The deferred
// links live in seedPersonTeams.
var seedPersons = []row{
	{personAlice, dataservice.Fields{"displayName": "Alice Henderson", "email": "alice.henderson@health.qld.gov.au", "phone": "07 3646 1001", "teamId": nil, "active": true}},
	{personBob, dataservice.Fields{"displayName": "Bob Marsh", "email": "bob.marsh@health.qld.gov.au", "phone": "07 3646 1002", "teamId": nil, "active": true}},
	{personCarol, dataservice.Fields{"displayName": "Carol Nguyen", "email": "carol.nguyen@health.qld.gov.au", "phone": "07 3646 1003", "teamId": nil, "active": true}},
	{personDan, dataservice.Fields{"displayName": "Dan Okafor", "email": "dan.okafor@health.qld.gov.au", "phone": "07 3646 1004", "teamId": nil, "active": true}},
	{personEve, dataservice.Fields{"displayName": "Eve Patterson", "email": "eve.patterson@health.qld.gov.au", "phone": "07 3646 1005", "teamId": nil, "active": true}},
	{personFrank, dataservice.Fields{"displayName": "Frank Reilly", "email": "frank.reilly@health.qld.gov.au", "phone": "07 3646 1006", "teamId": nil, "active": true}},
	{personGrace, dataservice.Fields{"displayName": "Grace Silva", "email": "grace.silva@health.qld.gov.au", "phone": "07 3646 1007", "teamId": nil, "active": true}},
	{personHank, dataservice.Fields{"displayName": "Hank Williams", "email": "hank.williams@health.qld.gov.au", "phone": "07 3646 1008", "teamId": nil, "active": false}},
}

var seedPersonTeams = map[string]string{
	personAlice: teamSim,
	personBob:   teamTraining,
	personCarol: teamClinical,
	personDan:   teamSim,
	personEve:   teamTraining,
	personFrank: teamBiomedical,
	personGrace: teamClinical,
}

var seedLocations = []row{
	{locSimLab, dataservice.Fields{"buildingId": buildingMain, "levelId": levelMain1, "name": "Simulation Laboratory", "contactPersonId": personAlice, "description": "Primary simulation lab with full AV setup"}},
	{locTrainingRoom, dataservice.Fields{"buildingId": buildingMain, "levelId": levelMainG, "name": "Training Room A", "contactPersonId": personBob, "description": "General-purpose training room, capacity 30"}},
	{locStoreRoom, dataservice.Fields{"buildingId": buildingMain, "levelId": levelMainG, "name": "Equipment Store Room", "contactPersonId": personDan, "description": "Secure storage for simulation equipment"}},
	{locSkillsLab, dataservice.Fields{"buildingId": buildingMain, "levelId": levelMain2, "name": "Clinical Skills Lab", "contactPersonId": personCarol, "description": "Dedicated skills training space with task stations"}},
	{locAnnexStore, dataservice.Fields{"buildingId": buildingAnnex, "levelId": levelAnnexG, "name": "Annex Storage", "contactPersonId": personFrank, "description": "Overflow equipment storage in annex building"}},
	{locWorkshop, dataservice.Fields{"buildingId": buildingAnnex, "levelId": levelAnnexG, "name": "Biomedical Workshop", "contactPersonId": personFrank, "description": "Repair and maintenance workshop"}},
}

var seedTeams = []row{
	{teamSim, dataservice.Fields{"teamCode": "SIM", "name": "Simulation Team", "mainContactPersonId": personAlice, "mainLocationId": locSimLab, "active": true}},
	{teamTraining, dataservice.Fields{"teamCode": "TRN", "name": "Training Team", "mainContactPersonId": personBob, "mainLocationId": locTrainingRoom, "active": true}},
	{teamClinical, dataservice.Fields{"teamCode": "CSK", "name": "Clinical Skills", "mainContactPersonId": personCarol, "mainLocationId": locSkillsLab, "active": true}},
	{teamBiomedical, dataservice.Fields{"teamCode": "BME", "name": "Biomedical Engineering", "mainContactPersonId": personFrank, "mainLocationId": locWorkshop, "active": true}},
}

var seedTeamMembers = []row{
	{"", dataservice.Fields{"teamId": teamSim, "personId": personAlice, "role": "Team Lead"}},
	{"", dataservice.Fields{"teamId": teamSim, "personId": personDan, "role": "Simulation Technician"}},
	{"", dataservice.Fields{"teamId": teamTraining, "personId": personBob, "role": "Training Coordinator"}},
	{"", dataservice.Fields{"teamId": teamTraining, "personId": personEve, "role": "Training Officer"}},
	{"", dataservice.Fields{"teamId": teamClinical, "personId": personCarol, "role": "Clinical Educator"}},
	{"", dataservice.Fields{"teamId": teamClinical, "personId": personGrace, "role": "Skills Instructor"}},
	{"", dataservice.Fields{"teamId": teamBiomedical, "personId": personFrank, "role": "Biomedical Engineer"}},
}

var seedEquipment = []row{
	{equipSimKit, dataservice.Fields{"equipmentCode": "SIM-KIT-001", "name": "Sim Lab Kit", "description": "Complete simulation lab equipment kit", "ownerType": "Team", "ownerTeamId": teamSim, "ownerPersonId": nil, "contactPersonId": personAlice, "homeLocationId": locSimLab, "parentEquipmentId": nil, "keyImageUrl": "", "quickStartFlowChartJson": "{}", "contentsListJson": `["Manikin","Defibrillator Trainer"]`, "status": "Available", "active": true}},
	{equipManikin, dataservice.Fields{"equipmentCode": "SIM-MAN-001", "name": "Adult Manikin", "description": "Full-body adult patient simulator manikin", "ownerType": "Team", "ownerTeamId": teamSim, "ownerPersonId": nil, "contactPersonId": personAlice, "homeLocationId": locSimLab, "parentEquipmentId": equipSimKit, "keyImageUrl": "", "quickStartFlowChartJson": "{}", "contentsListJson": "[]", "status": "Available", "active": true}},
	{equipDefibTrainer, dataservice.Fields{"equipmentCode": "SIM-DEF-001", "name": "Defibrillator Trainer", "description": "AED training unit with visual prompts", "ownerType": "Team", "ownerTeamId": teamSim, "ownerPersonId": nil, "contactPersonId": personDan, "homeLocationId": locSimLab, "parentEquipmentId": equipSimKit, "keyImageUrl": "", "quickStartFlowChartJson": "{}", "contentsListJson": "[]", "status": "InUse", "active": true}},
	{equipUltrasound, dataservice.Fields{"equipmentCode": "TRN-US-001", "name": "Ultrasound Trainer", "description": "Portable ultrasound simulation trainer", "ownerType": "Team", "ownerTeamId": teamTraining, "ownerPersonId": nil, "contactPersonId": personBob, "homeLocationId": locTrainingRoom, "parentEquipmentId": nil, "keyImageUrl": "https://placehold.co/400x300/5DADE2/ffffff?text=Ultrasound", "quickStartFlowChartJson": "{}", "contentsListJson": "[]", "status": "InUse", "active": true}},
	{equipAirwayKit, dataservice.Fields{"equipmentCode": "CSK-AIR-001", "name": "Airway Management Kit", "description": "Complete airway management training kit with intubation head", "ownerType": "Team", "ownerTeamId": teamClinical, "ownerPersonId": nil, "contactPersonId": personCarol, "homeLocationId": locSkillsLab, "parentEquipmentId": nil, "keyImageUrl": "https://placehold.co/400x300/2B9E9E/ffffff?text=Airway+Kit", "quickStartFlowChartJson": airwayKitFlowChart, "contentsListJson": airwayKitContents, "status": "Available", "active": true}},
	{equipIVArm, dataservice.Fields{"equipmentCode": "CSK-IV-001", "name": "IV Training Arm", "description": "Injectable training arm for venepuncture practice", "ownerType": "Team", "ownerTeamId": teamClinical, "ownerPersonId": nil, "contactPersonId": personGrace, "homeLocationId": locSkillsLab, "parentEquipmentId": nil, "keyImageUrl": "", "quickStartFlowChartJson": "{}", "contentsListJson": "[]", "status": "Available", "active": true}},
	{equipTaskTrainer, dataservice.Fields{"equipmentCode": "CSK-TT-001", "name": "Chest Drain Task Trainer", "description": "Procedural task trainer for chest drain insertion", "ownerType": "Person", "ownerTeamId": nil, "ownerPersonId": personCarol, "contactPersonId": personCarol, "homeLocationId": locSkillsLab, "parentEquipmentId": nil, "keyImageUrl": "", "quickStartFlowChartJson": "{}", "contentsListJson": "[]", "status": "UnderMaintenance", "active": true}},
	{equipBPSim, dataservice.Fields{"equipmentCode": "TRN-BP-001", "name": "Blood Pressure Simulator", "description": "Arm-mounted blood pressure auscultation simulator", "ownerType": "Team", "ownerTeamId": teamTraining, "ownerPersonId": nil, "contactPersonId": personEve, "homeLocationId": locTrainingRoom, "parentEquipmentId": nil, "keyImageUrl": "", "quickStartFlowChartJson": "{}", "contentsListJson": "[]", "status": "Available", "active": true}},
	{equipSuturePad, dataservice.Fields{"equipmentCode": "CSK-SP-001", "name": "Suture Practice Pad", "description": "Silicone wound closure practice pad", "ownerType": "Team", "ownerTeamId": teamClinical, "ownerPersonId": nil, "contactPersonId": personGrace, "homeLocationId": locSkillsLab, "parentEquipmentId": nil, "keyImageUrl": "", "quickStartFlowChartJson": "{}", "contentsListJson": "[]", "status": "Available", "active": true}},
	{equipVentilator, dataservice.Fields{"equipmentCode": "SIM-VENT-001", "name": "Ventilator Simulator", "description": "High-fidelity mechanical ventilator training unit", "ownerType": "Team", "ownerTeamId": teamSim, "ownerPersonId": nil, "contactPersonId": personDan, "homeLocationId": locSimLab, "parentEquipmentId": nil, "keyImageUrl": "", "quickStartFlowChartJson": "{}", "contentsListJson": "[]", "status": "UnderMaintenance", "active": true}},
	{equipProjector, dataservice.Fields{"equipmentCode": "TRN-PROJ-001", "name": "Portable Projector", "description": "Short-throw projector for training room presentations", "ownerType": "Team", "ownerTeamId": teamTraining, "ownerPersonId": nil, "contactPersonId": personBob, "homeLocationId": locTrainingRoom, "parentEquipmentId": nil, "keyImageUrl": "", "quickStartFlowChartJson": "{}", "contentsListJson": "[]", "status": "Available", "active": true}},
	{equipCamera, dataservice.Fields{"equipmentCode": "SIM-CAM-001", "name": "Debrief Camera", "description": "Wide-angle camera for simulation recording and debrief", "ownerType": "Person", "ownerTeamId": nil, "ownerPersonId": personDan, "contactPersonId": personDan, "homeLocationId": locSimLab, "parentEquipmentId": nil, "keyImageUrl": "", "quickStartFlowChartJson": "{}", "contentsListJson": "[]", "status": "InUse", "active": true}},
}

var seedEquipmentMedia = []row{
	{"", dataservice.Fields{"equipmentId": equipAirwayKit, "mediaType": "Image", "fileName": "airway-kit-overview.jpg", "mimeType": "image/jpeg", "fileUrl": "https://placehold.co/400x300/2B9E9E/ffffff?text=Airway+Kit", "sortOrder": 0}},
	{"", dataservice.Fields{"equipmentId": equipAirwayKit, "mediaType": "Image", "fileName": "laryngoscope-set.jpg", "mimeType": "image/jpeg", "fileUrl": "https://placehold.co/400x300/1B3A5F/ffffff?text=Laryngoscope", "sortOrder": 1}},
	{"", dataservice.Fields{"equipmentId": equipAirwayKit, "mediaType": "Attachment", "fileName": "airway-kit-manual.pdf", "mimeType": "application/pdf", "fileUrl": "#", "sortOrder": 2}},
	{"", dataservice.Fields{"equipmentId": equipSimKit, "mediaType": "Image", "fileName": "sim-kit-full.jpg", "mimeType": "image/jpeg", "fileUrl": "https://placehold.co/400x300/E55B64/ffffff?text=Sim+Lab+Kit", "sortOrder": 0}},
	{"", dataservice.Fields{"equipmentId": equipSimKit, "mediaType": "Image", "fileName": "sim-kit-open.jpg", "mimeType": "image/jpeg", "fileUrl": "https://placehold.co/400x300/B8CC26/1B3A5F?text=Kit+Contents", "sortOrder": 1}},
	{"", dataservice.Fields{"equipmentId": equipUltrasound, "mediaType": "Image", "fileName": "ultrasound-trainer.jpg", "mimeType": "image/jpeg", "fileUrl": "https://placehold.co/400x300/5DADE2/ffffff?text=Ultrasound", "sortOrder": 0}},
}

var seedLoanTransfers = []row{
	{"", dataservice.Fields{"equipmentId": equipUltrasound, "startDate": "2026-02-10", "dueDate": "2026-02-24", "originTeamId": teamTraining, "recipientTeamId": teamClinical, "reasonCode": "Training", "approverPersonId": personBob, "isInternalTransfer": false, "status": "Active", "notes": "Needed for procedural skills workshop week"}},
	{"", dataservice.Fields{"equipmentId": equipDefibTrainer, "startDate": "2026-01-05", "dueDate": "2026-01-19", "originTeamId": teamSim, "recipientTeamId": teamSim, "reasonCode": "Simulation", "approverPersonId": personAlice, "isInternalTransfer": true, "status": "Returned", "notes": "Moved to annex for weekend sim event"}},
	{"", dataservice.Fields{"equipmentId": equipBPSim, "startDate": "2026-03-01", "dueDate": "2026-03-15", "originTeamId": teamTraining, "recipientTeamId": teamSim, "reasonCode": "Simulation", "approverPersonId": personEve, "isInternalTransfer": false, "status": "Draft", "notes": "Pending approval for March sim session"}},
	{"", dataservice.Fields{"equipmentId": equipCamera, "startDate": "2026-02-14", "dueDate": "2026-02-21", "originTeamId": teamSim, "recipientTeamId": teamBiomedical, "reasonCode": "Service", "approverPersonId": personDan, "isInternalTransfer": false, "status": "Active", "notes": "Camera sent for firmware update"}},
}

var seedIssues = []row{
	{"", dataservice.Fields{"equipmentId": equipVentilator, "title": "Ventilator display intermittently blank", "description": "Screen blanks out mid-scenario, power cycling restores it", "reportedByPersonId": personDan, "assignedToPersonId": personFrank, "status": "InProgress", "priority": "High", "dueDate": "2026-03-10"}},
	{"", dataservice.Fields{"equipmentId": equipTaskTrainer, "title": "Chest drain trainer skin pad torn", "description": "Insertion site pad needs replacement before next workshop", "reportedByPersonId": personCarol, "assignedToPersonId": nil}},
}

var seedPMTemplates = []row{
	{pmtManikin, dataservice.Fields{"equipmentId": equipManikin, "name": "Manikin Monthly Check", "description": "Monthly functional and cosmetic inspection", "frequency": "Monthly", "active": true}},
}

var seedPMTemplateItems = []row{
	{"", dataservice.Fields{"pmTemplateId": pmtManikin, "description": "Check battery charge and connectors", "sortOrder": 0}},
	{"", dataservice.Fields{"pmTemplateId": pmtManikin, "description": "Inspect skin for tears and staining", "sortOrder": 1}},
	{"", dataservice.Fields{"pmTemplateId": pmtManikin, "description": "Run airway inflation self-test", "sortOrder": 2}},
}
