package model

// Closed value sets of the domain. The Persian-facing labels live in the
// presentation layer; the engine stores stable snake_case codes.

type Province string

const (
	ProvinceAlborz                  Province = "alborz"
	ProvinceEastAzerbaijan          Province = "east_azerbaijan"
	ProvinceWestAzerbaijan          Province = "west_azerbaijan"
	ProvinceBushehr                 Province = "bushehr"
	ProvinceChaharmahalBakhtiari    Province = "chaharmahal_bakhtiari"
	ProvinceFars                    Province = "fars"
	ProvinceGilan                   Province = "gilan"
	ProvinceGolestan                Province = "golestan"
	ProvinceHamadan                 Province = "hamadan"
	ProvinceHormozgan               Province = "hormozgan"
	ProvinceIlam                    Province = "ilam"
	ProvinceIsfahan                 Province = "isfahan"
	ProvinceKerman                  Province = "kerman"
	ProvinceKermanshah              Province = "kermanshah"
	ProvinceNorthKhorasan           Province = "north_khorasan"
	ProvinceRazaviKhorasan          Province = "razavi_khorasan"
	ProvinceSouthKhorasan           Province = "south_khorasan"
	ProvinceKhuzestan               Province = "khuzestan"
	ProvinceKohgiluyehBoyerAhmad    Province = "kohgiluyeh_boyer_ahmad"
	ProvinceKurdistan               Province = "kurdistan"
	ProvinceLorestan                Province = "lorestan"
	ProvinceMarkazi                 Province = "markazi"
	ProvinceMazandaran              Province = "mazandaran"
	ProvinceQazvin                  Province = "qazvin"
	ProvinceQom                     Province = "qom"
	ProvinceSemnan                  Province = "semnan"
	ProvinceSistanBaluchestan       Province = "sistan_baluchestan"
	ProvinceTehran                  Province = "tehran"
	ProvinceYazd                    Province = "yazd"
	ProvinceZanjan                  Province = "zanjan"
	ProvinceKish                    Province = "kish"
	ProvinceArdabil                 Province = "ardabil"
)

var Provinces = []Province{
	ProvinceAlborz, ProvinceEastAzerbaijan, ProvinceWestAzerbaijan,
	ProvinceBushehr, ProvinceChaharmahalBakhtiari, ProvinceFars,
	ProvinceGilan, ProvinceGolestan, ProvinceHamadan, ProvinceHormozgan,
	ProvinceIlam, ProvinceIsfahan, ProvinceKerman, ProvinceKermanshah,
	ProvinceNorthKhorasan, ProvinceRazaviKhorasan, ProvinceSouthKhorasan,
	ProvinceKhuzestan, ProvinceKohgiluyehBoyerAhmad, ProvinceKurdistan,
	ProvinceLorestan, ProvinceMarkazi, ProvinceMazandaran, ProvinceQazvin,
	ProvinceQom, ProvinceSemnan, ProvinceSistanBaluchestan, ProvinceTehran,
	ProvinceYazd, ProvinceZanjan, ProvinceKish, ProvinceArdabil,
}

func (p Province) Valid() bool {
	for _, known := range Provinces {
		if p == known {
			return true
		}
	}
	return false
}

type ProgramType string

const (
	ProgramTypeRoadRescueBase     ProgramType = "road_rescue_base"
	ProgramTypeMountainRescueBase ProgramType = "mountain_rescue_base"
	ProgramTypeMarineRescueBase   ProgramType = "marine_rescue_base"
	ProgramTypeAdminBuilding      ProgramType = "admin_training_medical_cultural_building"
	ProgramTypeAirSupportBase     ProgramType = "air_support_operations_base"
	ProgramTypeRevenueGeneration  ProgramType = "revenue_generation"
	ProgramTypeReliefWarehouse    ProgramType = "multipurpose_hall_relief_warehouse"
)

var ProgramTypes = []ProgramType{
	ProgramTypeRoadRescueBase, ProgramTypeMountainRescueBase,
	ProgramTypeMarineRescueBase, ProgramTypeAdminBuilding,
	ProgramTypeAirSupportBase, ProgramTypeRevenueGeneration,
	ProgramTypeReliefWarehouse,
}

func (t ProgramType) Valid() bool {
	for _, known := range ProgramTypes {
		if t == known {
			return true
		}
	}
	return false
}

type LicenseState string

const (
	LicenseStateHeld       LicenseState = "held"
	LicenseStateNotHeld    LicenseState = "not_held"
	LicenseStateInProgress LicenseState = "in_progress"
	LicenseStatePreDecree  LicenseState = "pre_decree_1391"
)

var LicenseStates = []LicenseState{
	LicenseStateHeld, LicenseStateNotHeld, LicenseStateInProgress, LicenseStatePreDecree,
}

func (s LicenseState) Valid() bool {
	for _, known := range LicenseStates {
		if s == known {
			return true
		}
	}
	return false
}

type ProjectType string

const (
	ProjectTypeConstruction       ProjectType = "construction"
	ProjectTypeCompletion         ProjectType = "completion"
	ProjectTypeLandscaping        ProjectType = "landscaping"
	ProjectTypeWalling            ProjectType = "walling"
	ProjectTypeLandscapingWalling ProjectType = "landscaping_and_walling"
	ProjectTypeRepairs            ProjectType = "repairs"
	ProjectTypeDesignConsultant   ProjectType = "design_consultant_phase_1_2"
	ProjectTypeSupervisionConsult ProjectType = "supervision_consultant_phase_3"
)

var ProjectTypes = []ProjectType{
	ProjectTypeConstruction, ProjectTypeCompletion, ProjectTypeLandscaping,
	ProjectTypeWalling, ProjectTypeLandscapingWalling, ProjectTypeRepairs,
	ProjectTypeDesignConsultant, ProjectTypeSupervisionConsult,
}

func (t ProjectType) Valid() bool {
	for _, known := range ProjectTypes {
		if t == known {
			return true
		}
	}
	return false
}

// ProjectStatus is derived from child subproject states, never set directly.
type ProjectStatus string

const (
	ProjectStatusActive   ProjectStatus = "active"
	ProjectStatusFunded   ProjectStatus = "funded"
	ProjectStatusInactive ProjectStatus = "inactive"
)

type SubProjectType string

const (
	SubProjectTypeStudyPhase        SubProjectType = "study_phase"
	SubProjectTypeDesignPhase12     SubProjectType = "design_phase_1_2"
	SubProjectTypeTender            SubProjectType = "tender"
	SubProjectTypeContractHandover  SubProjectType = "contract_and_site_handover"
	SubProjectTypeSiteEquipment     SubProjectType = "site_equipment"
	SubProjectTypeExcavation        SubProjectType = "excavation"
	SubProjectTypeFoundation        SubProjectType = "foundation"
	SubProjectTypeSkeleton          SubProjectType = "skeleton"
	SubProjectTypeMasonry           SubProjectType = "masonry"
	SubProjectTypeFacade            SubProjectType = "facade"
	SubProjectTypeInstallations     SubProjectType = "installations"
	SubProjectTypeFinishing         SubProjectType = "finishing"
	SubProjectTypeElectromechanical SubProjectType = "electromechanical_fittings"
	SubProjectTypeLandscaping       SubProjectType = "landscaping"
	SubProjectTypeWalling           SubProjectType = "walling"
	SubProjectTypeLandscapeWalling  SubProjectType = "landscaping_and_walling"
)

var SubProjectTypes = []SubProjectType{
	SubProjectTypeStudyPhase, SubProjectTypeDesignPhase12, SubProjectTypeTender,
	SubProjectTypeContractHandover, SubProjectTypeSiteEquipment,
	SubProjectTypeExcavation, SubProjectTypeFoundation, SubProjectTypeSkeleton,
	SubProjectTypeMasonry, SubProjectTypeFacade, SubProjectTypeInstallations,
	SubProjectTypeFinishing, SubProjectTypeElectromechanical,
	SubProjectTypeLandscaping, SubProjectTypeWalling, SubProjectTypeLandscapeWalling,
}

func (t SubProjectType) Valid() bool {
	for _, known := range SubProjectTypes {
		if t == known {
			return true
		}
	}
	return false
}

type SubProjectState string

const (
	SubProjectStateActive            SubProjectState = "active"
	SubProjectStateTerminated        SubProjectState = "inactive_terminated"
	SubProjectStateArticle46         SubProjectState = "inactive_article_46"
	SubProjectStateSuspended         SubProjectState = "inactive_suspended"
	SubProjectStateContractComplete  SubProjectState = "inactive_contract_complete"
	SubProjectStateTemporaryHandover SubProjectState = "temporary_handover"
	SubProjectStateFinalHandover     SubProjectState = "final_handover"
	SubProjectStateFunded            SubProjectState = "funded"
)

var SubProjectStates = []SubProjectState{
	SubProjectStateActive, SubProjectStateTerminated, SubProjectStateArticle46,
	SubProjectStateSuspended, SubProjectStateContractComplete,
	SubProjectStateTemporaryHandover, SubProjectStateFinalHandover,
	SubProjectStateFunded,
}

func (s SubProjectState) Valid() bool {
	for _, known := range SubProjectStates {
		if s == known {
			return true
		}
	}
	return false
}

type ContractType string

const (
	ContractTypeLumpSum          ContractType = "lump_sum"
	ContractTypeUnitPrice        ContractType = "unit_price"
	ContractTypeManagement       ContractType = "management_contracting"
	ContractTypeBuildPartnership ContractType = "build_partnership"
	ContractTypeCharityBuilt     ContractType = "charity_built"
	ContractTypeBOT              ContractType = "bot"
	ContractTypeEPC              ContractType = "epc"
	ContractTypeEC               ContractType = "ec"
	ContractTypeForceAccount     ContractType = "force_account"
	ContractTypeNone             ContractType = "no_contract"
)

var ContractTypes = []ContractType{
	ContractTypeLumpSum, ContractTypeUnitPrice, ContractTypeManagement,
	ContractTypeBuildPartnership, ContractTypeCharityBuilt, ContractTypeBOT,
	ContractTypeEPC, ContractTypeEC, ContractTypeForceAccount, ContractTypeNone,
}

func (t ContractType) Valid() bool {
	for _, known := range ContractTypes {
		if t == known {
			return true
		}
	}
	return false
}

type ExecutionMethod string

const (
	ExecutionPublicTenderThreeParty    ExecutionMethod = "public_tender_three_party"
	ExecutionWaivedTenderThreeParty    ExecutionMethod = "waived_tender_three_party"
	ExecutionLimitedTenderThreeParty   ExecutionMethod = "limited_tender_three_party"
	ExecutionPublicTenderProvincial    ExecutionMethod = "public_tender_provincial_office"
	ExecutionWaivedTenderProvincial    ExecutionMethod = "waived_tender_provincial_office"
	ExecutionLimitedTenderProvincial   ExecutionMethod = "limited_tender_provincial_office"
	ExecutionPriceInquiryProvincial    ExecutionMethod = "price_inquiry_provincial_office"
)

var ExecutionMethods = []ExecutionMethod{
	ExecutionPublicTenderThreeParty, ExecutionWaivedTenderThreeParty,
	ExecutionLimitedTenderThreeParty, ExecutionPublicTenderProvincial,
	ExecutionWaivedTenderProvincial, ExecutionLimitedTenderProvincial,
	ExecutionPriceInquiryProvincial,
}

func (m ExecutionMethod) Valid() bool {
	for _, known := range ExecutionMethods {
		if m == known {
			return true
		}
	}
	return false
}

type RelationshipType string

const (
	RelationshipAfter     RelationshipType = "after"
	RelationshipBefore    RelationshipType = "before"
	RelationshipStartWith RelationshipType = "start_with"
	RelationshipEndWith   RelationshipType = "end_with"
	RelationshipFloating  RelationshipType = "floating"
)

var RelationshipTypes = []RelationshipType{
	RelationshipAfter, RelationshipBefore, RelationshipStartWith,
	RelationshipEndWith, RelationshipFloating,
}

func (t RelationshipType) Valid() bool {
	for _, known := range RelationshipTypes {
		if t == known {
			return true
		}
	}
	return false
}
