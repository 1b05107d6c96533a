package dataverse

// Choice maps. One canonical string→int table per enum; inverses are derived
// by the codec. The integer codes are the remote store's and must not change.

var ownerTypeCodec = NewChoiceCodec(map[string]int{
	"Team":   1,
	"Person": 2,
})

var equipmentStatusCodec = NewChoiceCodec(map[string]int{
	"Available":        1,
	"InUse":            2,
	"UnderMaintenance": 3,
	"Retired":          4,
})

var loanStatusCodec = NewChoiceCodec(map[string]int{
	"Draft":     100000000,
	"Active":    100000001,
	"Overdue":   100000002,
	"Returned":  100000003,
	"Cancelled": 100000004,
})

var loanReasonCodec = NewChoiceCodec(map[string]int{
	"Simulation": 100000000,
	"Training":   100000001,
	"Service":    100000002,
	"Other":      100000003,
})

var mediaTypeCodec = NewChoiceCodec(map[string]int{
	"Image":      100000000,
	"Attachment": 100000001,
})

var issueStatusCodec = NewChoiceCodec(map[string]int{
	"Open":          100000000,
	"InProgress":    100000001,
	"AwaitingParts": 100000002,
	"Resolved":      100000003,
	"Closed":        100000004,
})

var issuePriorityCodec = NewChoiceCodec(map[string]int{
	"Low":      100000000,
	"Medium":   100000001,
	"High":     100000002,
	"Critical": 100000003,
})

var correctiveActionStatusCodec = NewChoiceCodec(map[string]int{
	"Planned":    100000000,
	"InProgress": 100000001,
	"Completed":  100000002,
	"Verified":   100000003,
})

var pmStatusCodec = NewChoiceCodec(map[string]int{
	"Scheduled":  100000000,
	"InProgress": 100000001,
	"Completed":  100000002,
	"Overdue":    100000003,
	"Cancelled":  100000004,
})

var pmFrequencyCodec = NewChoiceCodec(map[string]int{
	"Weekly":     100000000,
	"Monthly":    100000001,
	"Quarterly":  100000002,
	"SemiAnnual": 100000003,
	"Annual":     100000004,
})

var pmChecklistItemStatusCodec = NewChoiceCodec(map[string]int{
	"Pending":       100000000,
	"Pass":          100000001,
	"Fail":          100000002,
	"NotApplicable": 100000003,
})

// Per-entity adapters. Column logical names mirror the provisioned Dataverse
// solution exactly; any drift breaks read/write compatibility.

var PersonAdapter = &ColumnAdapter{
	Table:      "redi_persons",
	EntityName: "Person",
	IDField:    "personId",
	IDColumn:   "redi_personid",
	Columns: map[string]string{
		"personId":    "redi_personid",
		"displayName": "redi_displayname",
		"email":       "redi_email",
		"phone":       "redi_phone",
		// Team membership lives on redi_teammember; mapped for model
		// compatibility only.
		"teamId": "_redi_teamid_value",
		"active": "redi_active",
	},
	VirtualFields: []string{"teamId"},
	BaseFilter:    "redi_active ne null",
	SearchFields:  []string{"displayName", "email"},
}

var TeamAdapter = &ColumnAdapter{
	Table:      "redi_teams",
	EntityName: "Team",
	IDField:    "teamId",
	IDColumn:   "redi_teamid",
	Columns: map[string]string{
		"teamId":              "redi_teamid",
		"teamCode":            "redi_teamcode",
		"name":                "redi_team_name",
		"mainContactPersonId": "_redi_maincontactpersonid_value",
		"mainLocationId":      "_redi_mainlocationid_value",
		"active":              "redi_active",
	},
	Lookups: map[string]Lookup{
		"mainContactPersonId": {TargetTable: "redi_persons"},
		"mainLocationId":      {TargetTable: "redi_locations"},
	},
	SearchFields: []string{"name", "teamCode"},
}

var TeamMemberAdapter = &ColumnAdapter{
	Table:      "redi_teammembers",
	EntityName: "TeamMember",
	IDField:    "teamMemberId",
	IDColumn:   "redi_teammemberid",
	Columns: map[string]string{
		"teamMemberId": "redi_teammemberid",
		"teamId":       "_redi_teamid_value",
		"personId":     "_redi_personid_value",
		"role":         "redi_role",
	},
	Lookups: map[string]Lookup{
		"teamId":   {TargetTable: "redi_teams"},
		"personId": {TargetTable: "redi_persons"},
	},
	SearchFields: []string{"role"},
}

var BuildingAdapter = &ColumnAdapter{
	Table:      "redi_buildings",
	EntityName: "Building",
	IDField:    "buildingId",
	IDColumn:   "redi_buildingid",
	Columns: map[string]string{
		"buildingId": "redi_buildingid",
		"name":       "redi_building_name",
		"code":       "redi_code",
	},
	SearchFields: []string{"name", "code"},
}

var LevelAdapter = &ColumnAdapter{
	Table:      "redi_levels",
	EntityName: "Level",
	IDField:    "levelId",
	IDColumn:   "redi_levelid",
	Columns: map[string]string{
		"levelId":    "redi_levelid",
		"buildingId": "_redi_buildingid_value",
		"name":       "redi_level_name",
		"sortOrder":  "redi_sortorder",
	},
	Lookups: map[string]Lookup{
		"buildingId": {TargetTable: "redi_buildings"},
	},
	SearchFields: []string{"name"},
}

var LocationAdapter = &ColumnAdapter{
	Table:      "redi_locations",
	EntityName: "Location",
	IDField:    "locationId",
	IDColumn:   "redi_locationid",
	Columns: map[string]string{
		"locationId":      "redi_locationid",
		"buildingId":      "_redi_sq_buildingid_value",
		"levelId":         "_redi_sq_levelid_value",
		"name":            "redi_departmentname",
		"contactPersonId": "_redi_contactpersonid_value",
		"description":     "redi_sq_description",
	},
	BaseFilter: "_redi_sq_buildingid_value ne null",
	Lookups: map[string]Lookup{
		"buildingId":      {TargetTable: "redi_buildings"},
		"levelId":         {TargetTable: "redi_levels"},
		"contactPersonId": {TargetTable: "redi_persons"},
	},
	SearchFields: []string{"name", "description"},
}

var EquipmentAdapter = &ColumnAdapter{
	Table:      "redi_equipments",
	EntityName: "Equipment",
	IDField:    "equipmentId",
	IDColumn:   "redi_equipmentid",
	Columns: map[string]string{
		"equipmentId":             "redi_equipmentid",
		"equipmentCode":           "redi_equipmentcode",
		"name":                    "redi_itemname",
		"description":             "redi_sq_description",
		"ownerType":               "redi_sq_ownertype",
		"ownerTeamId":             "_redi_ownerteamid_value",
		"ownerPersonId":           "_redi_ownerpersonid_value",
		"contactPersonId":         "_redi_sq_contactpersonid_value",
		"homeLocationId":          "_redi_sq_homelocationid_value",
		"parentEquipmentId":       "_redi_parentequipmentid_value",
		"keyImageUrl":             "redi_keyimageurl",
		"quickStartFlowChartJson": "redi_quickstartflowchartjson",
		"contentsListJson":        "redi_contentslistjson",
		"status":                  "redi_sq_status",
		"active":                  "redi_sq_active",
	},
	Choices: map[string]*ChoiceCodec{
		"ownerType": ownerTypeCodec,
		"status":    equipmentStatusCodec,
	},
	BaseFilter: "redi_sq_active ne null",
	Lookups: map[string]Lookup{
		"ownerTeamId":       {TargetTable: "redi_teams"},
		"ownerPersonId":     {TargetTable: "redi_persons"},
		"contactPersonId":   {TargetTable: "redi_persons"},
		"homeLocationId":    {TargetTable: "redi_locations"},
		"parentEquipmentId": {TargetTable: "redi_equipments"},
	},
	SearchFields: []string{"name", "equipmentCode", "description"},
}

var EquipmentMediaAdapter = &ColumnAdapter{
	Table:      "redi_equipmentmedias",
	EntityName: "EquipmentMedia",
	IDField:    "equipmentMediaId",
	IDColumn:   "redi_equipmentmediaid",
	Columns: map[string]string{
		"equipmentMediaId": "redi_equipmentmediaid",
		"equipmentId":      "_redi_equipmentid_value",
		"mediaType":        "redi_mediatype",
		"fileName":         "redi_filename",
		"mimeType":         "redi_mimetype",
		"fileUrl":          "redi_fileurl",
		"sortOrder":        "redi_sortorder",
	},
	Choices: map[string]*ChoiceCodec{
		"mediaType": mediaTypeCodec,
	},
	Lookups: map[string]Lookup{
		"equipmentId": {TargetTable: "redi_equipments"},
	},
	SearchFields: []string{"fileName"},
}

var LocationMediaAdapter = &ColumnAdapter{
	Table:      "redi_locationmedias",
	EntityName: "LocationMedia",
	IDField:    "locationMediaId",
	IDColumn:   "redi_locationmediaid",
	Columns: map[string]string{
		"locationMediaId": "redi_locationmediaid",
		"locationId":      "_redi_locationid_value",
		"mediaType":       "redi_mediatype",
		"fileName":        "redi_filename",
		"mimeType":        "redi_mimetype",
		"fileUrl":         "redi_fileurl",
		"sortOrder":       "redi_sortorder",
	},
	Choices: map[string]*ChoiceCodec{
		"mediaType": mediaTypeCodec,
	},
	Lookups: map[string]Lookup{
		"locationId": {TargetTable: "redi_locations"},
	},
	SearchFields: []string{"fileName"},
}

var LoanTransferAdapter = &ColumnAdapter{
	Table:      "redi_loantransfers",
	EntityName: "LoanTransfer",
	IDField:    "loanTransferId",
	IDColumn:   "redi_loantransferid",
	Columns: map[string]string{
		"loanTransferId":     "redi_loantransferid",
		"equipmentId":        "_redi_equipmentid_value",
		"startDate":          "redi_startdate",
		"dueDate":            "redi_duedate",
		"originTeamId":       "_redi_originteamid_value",
		"recipientTeamId":    "_redi_recipientteamid_value",
		"reasonCode":         "redi_reasoncode",
		"approverPersonId":   "_redi_approverpersonid_value",
		"isInternalTransfer": "redi_isinternaltransfer",
		"status":             "redi_loanstatus",
		"notes":              "redi_notes",
	},
	Choices: map[string]*ChoiceCodec{
		"reasonCode": loanReasonCodec,
		"status":     loanStatusCodec,
	},
	Lookups: map[string]Lookup{
		"equipmentId":      {TargetTable: "redi_equipments"},
		"originTeamId":     {TargetTable: "redi_teams"},
		"recipientTeamId":  {TargetTable: "redi_teams"},
		"approverPersonId": {TargetTable: "redi_persons"},
	},
	SearchFields: []string{"notes"},
}

var EquipmentIssueAdapter = &ColumnAdapter{
	Table:      "redi_equipmentissues",
	EntityName: "EquipmentIssue",
	IDField:    "issueId",
	IDColumn:   "redi_equipmentissueid",
	Columns: map[string]string{
		"issueId":            "redi_equipmentissueid",
		"equipmentId":        "_redi_equipmentid_value",
		"title":              "redi_title",
		"description":        "redi_description",
		"reportedByPersonId": "_redi_reportedbypersonid_value",
		"assignedToPersonId": "_redi_assignedtopersonid_value",
		"status":             "redi_issuestatus",
		"priority":           "redi_issuepriority",
		"dueDate":            "redi_duedate",
		"createdOn":          "redi_createdon",
		"resolvedOn":         "redi_resolvedon",
		"active":             "redi_active",
	},
	Choices: map[string]*ChoiceCodec{
		"status":   issueStatusCodec,
		"priority": issuePriorityCodec,
	},
	Lookups: map[string]Lookup{
		"equipmentId":        {TargetTable: "redi_equipments"},
		"reportedByPersonId": {TargetTable: "redi_persons"},
		"assignedToPersonId": {TargetTable: "redi_persons"},
	},
	SearchFields: []string{"title", "description"},
}

var IssueNoteAdapter = &ColumnAdapter{
	Table:      "redi_issuenotes",
	EntityName: "IssueNote",
	IDField:    "issueNoteId",
	IDColumn:   "redi_issuenoteid",
	Columns: map[string]string{
		"issueNoteId":    "redi_issuenoteid",
		"issueId":        "_redi_equipmentissueid_value",
		"authorPersonId": "_redi_authorpersonid_value",
		"content":        "redi_content",
		"createdOn":      "redi_createdon",
	},
	Lookups: map[string]Lookup{
		"issueId":        {TargetTable: "redi_equipmentissues"},
		"authorPersonId": {TargetTable: "redi_persons"},
	},
	SearchFields: []string{"content"},
}

var CorrectiveActionAdapter = &ColumnAdapter{
	Table:      "redi_correctiveactions",
	EntityName: "CorrectiveAction",
	IDField:    "correctiveActionId",
	IDColumn:   "redi_correctiveactionid",
	Columns: map[string]string{
		"correctiveActionId":    "redi_correctiveactionid",
		"issueId":               "_redi_equipmentissueid_value",
		"description":           "redi_description",
		"assignedToPersonId":    "_redi_assignedtopersonid_value",
		"status":                "redi_actionstatus",
		"equipmentStatusChange": "redi_equipmentstatuschange",
		"completedOn":           "redi_completedon",
		"createdOn":             "redi_createdon",
	},
	Choices: map[string]*ChoiceCodec{
		"status":                correctiveActionStatusCodec,
		"equipmentStatusChange": equipmentStatusCodec,
	},
	Lookups: map[string]Lookup{
		"issueId":            {TargetTable: "redi_equipmentissues"},
		"assignedToPersonId": {TargetTable: "redi_persons"},
	},
	SearchFields: []string{"description"},
}

var PMTemplateAdapter = &ColumnAdapter{
	Table:      "redi_pmtemplates",
	EntityName: "PMTemplate",
	IDField:    "pmTemplateId",
	IDColumn:   "redi_pmtemplateid",
	Columns: map[string]string{
		"pmTemplateId": "redi_pmtemplateid",
		"equipmentId":  "_redi_equipmentid_value",
		"name":         "redi_name",
		"description":  "redi_description",
		"frequency":    "redi_frequency",
		"active":       "redi_active",
	},
	Choices: map[string]*ChoiceCodec{
		"frequency": pmFrequencyCodec,
	},
	Lookups: map[string]Lookup{
		"equipmentId": {TargetTable: "redi_equipments"},
	},
	SearchFields: []string{"name", "description"},
}

var PMTemplateItemAdapter = &ColumnAdapter{
	Table:      "redi_pmtemplateitems",
	EntityName: "PMTemplateItem",
	IDField:    "pmTemplateItemId",
	IDColumn:   "redi_pmtemplateitemid",
	Columns: map[string]string{
		"pmTemplateItemId": "redi_pmtemplateitemid",
		"pmTemplateId":     "_redi_pmtemplateid_value",
		"description":      "redi_description",
		"sortOrder":        "redi_sortorder",
	},
	Lookups: map[string]Lookup{
		"pmTemplateId": {TargetTable: "redi_pmtemplates"},
	},
	SearchFields: []string{"description"},
}

var PMTaskAdapter = &ColumnAdapter{
	Table:      "redi_pmtasks",
	EntityName: "PMTask",
	IDField:    "pmTaskId",
	IDColumn:   "redi_pmtaskid",
	Columns: map[string]string{
		"pmTaskId":            "redi_pmtaskid",
		"pmTemplateId":        "_redi_pmtemplateid_value",
		"equipmentId":         "_redi_equipmentid_value",
		"scheduledDate":       "redi_scheduleddate",
		"completedDate":       "redi_completeddate",
		"completedByPersonId": "_redi_completedbypersonid_value",
		"status":              "redi_pmstatus",
		"notes":               "redi_notes",
		"generatedIssueId":    "_redi_generatedissueid_value",
	},
	Choices: map[string]*ChoiceCodec{
		"status": pmStatusCodec,
	},
	Lookups: map[string]Lookup{
		"pmTemplateId":        {TargetTable: "redi_pmtemplates"},
		"equipmentId":         {TargetTable: "redi_equipments"},
		"completedByPersonId": {TargetTable: "redi_persons"},
		"generatedIssueId":    {TargetTable: "redi_equipmentissues"},
	},
	SearchFields: []string{"notes"},
}

var PMTaskItemAdapter = &ColumnAdapter{
	Table:      "redi_pmtaskitems",
	EntityName: "PMTaskItem",
	IDField:    "pmTaskItemId",
	IDColumn:   "redi_pmtaskitemid",
	Columns: map[string]string{
		"pmTaskItemId":     "redi_pmtaskitemid",
		"pmTaskId":         "_redi_pmtaskid_value",
		"pmTemplateItemId": "_redi_pmtemplateitemid_value",
		"description":      "redi_description",
		"status":           "redi_checkliststatus",
		"notes":            "redi_notes",
		"sortOrder":        "redi_sortorder",
	},
	Choices: map[string]*ChoiceCodec{
		"status": pmChecklistItemStatusCodec,
	},
	Lookups: map[string]Lookup{
		"pmTaskId":         {TargetTable: "redi_pmtasks"},
		"pmTemplateItemId": {TargetTable: "redi_pmtemplateitems"},
	},
	SearchFields: []string{"description", "notes"},
}
