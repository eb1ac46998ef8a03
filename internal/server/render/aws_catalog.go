package render

// awsNodeType is one entry of the AWS resource catalogue. Aliases map to the
// same Class.
type awsNodeType struct {
	Class    string
	Category string
}

var awsNodeTypes = map[string]awsNodeType{
	"AmazonOpensearchService":                                   {Class: "AmazonOpensearchService", Category: "Analytics"},
	"Analytics":                                                 {Class: "Analytics", Category: "Analytics"},
	"Athena":                                                    {Class: "Athena", Category: "Analytics"},
	"CloudsearchSearchDocuments":                                {Class: "CloudsearchSearchDocuments", Category: "Analytics"},
	"Cloudsearch":                                               {Class: "Cloudsearch", Category: "Analytics"},
	"DataLakeResource":                                          {Class: "DataLakeResource", Category: "Analytics"},
	"DataPipeline":                                              {Class: "DataPipeline", Category: "Analytics"},
	"ElasticsearchService":                                      {Class: "ElasticsearchService", Category: "Analytics"},
	"ES":                                                        {Class: "ElasticsearchService", Category: "Analytics"},
	"EMRCluster":                                                {Class: "EMRCluster", Category: "Analytics"},
	"EMREngineMaprM3":                                           {Class: "EMREngineMaprM3", Category: "Analytics"},
	"EMREngineMaprM5":                                           {Class: "EMREngineMaprM5", Category: "Analytics"},
	"EMREngineMaprM7":                                           {Class: "EMREngineMaprM7", Category: "Analytics"},
	"EMREngine":                                                 {Class: "EMREngine", Category: "Analytics"},
	"EMRHdfsCluster":                                            {Class: "EMRHdfsCluster", Category: "Analytics"},
	"EMR":                                                       {Class: "EMR", Category: "Analytics"},
	"GlueCrawlers":                                              {Class: "GlueCrawlers", Category: "Analytics"},
	"GlueDataCatalog":                                           {Class: "GlueDataCatalog", Category: "Analytics"},
	"Glue":                                                      {Class: "Glue", Category: "Analytics"},
	"KinesisDataAnalytics":                                      {Class: "KinesisDataAnalytics", Category: "Analytics"},
	"KinesisDataFirehose":                                       {Class: "KinesisDataFirehose", Category: "Analytics"},
	"KinesisDataStreams":                                        {Class: "KinesisDataStreams", Category: "Analytics"},
	"KinesisVideoStreams":                                       {Class: "KinesisVideoStreams", Category: "Analytics"},
	"Kinesis":                                                   {Class: "Kinesis", Category: "Analytics"},
	"LakeFormation":                                             {Class: "LakeFormation", Category: "Analytics"},
	"ManagedStreamingForKafka":                                  {Class: "ManagedStreamingForKafka", Category: "Analytics"},
	"Quicksight":                                                {Class: "Quicksight", Category: "Analytics"},
	"RedshiftDenseComputeNode":                                  {Class: "RedshiftDenseComputeNode", Category: "Analytics"},
	"RedshiftDenseStorageNode":                                  {Class: "RedshiftDenseStorageNode", Category: "Analytics"},
	"Redshift":                                                  {Class: "Redshift", Category: "Analytics"},
	"ArVr":                                                      {Class: "ArVr", Category: "Augmented Reality"},
	"Sumerian":                                                  {Class: "Sumerian", Category: "Augmented Reality"},
	"BlockchainResource":                                        {Class: "BlockchainResource", Category: "Blockchain"},
	"Blockchain":                                                {Class: "Blockchain", Category: "Blockchain"},
	"ManagedBlockchain":                                         {Class: "ManagedBlockchain", Category: "Blockchain"},
	"QuantumLedgerDatabaseQldb":                                 {Class: "QuantumLedgerDatabaseQldb", Category: "Blockchain"},
	"QLDB":                                                      {Class: "QuantumLedgerDatabaseQldb", Category: "Blockchain"},
	"AppRunner":                                                 {Class: "AppRunner", Category: "Compute"},
	"ApplicationAutoScaling":                                    {Class: "ApplicationAutoScaling", Category: "Compute"},
	"AutoScaling":                                               {Class: "ApplicationAutoScaling", Category: "Compute"},
	"Batch":                                                     {Class: "Batch", Category: "Compute"},
	"ComputeOptimizer":                                          {Class: "ComputeOptimizer", Category: "Compute"},
	"Compute":                                                   {Class: "Compute", Category: "Compute"},
	"EC2Ami":                                                    {Class: "EC2Ami", Category: "Compute"},
	"AMI":                                                       {Class: "EC2Ami", Category: "Compute"},
	"EC2AutoScaling":                                            {Class: "EC2AutoScaling", Category: "Compute"},
	"EC2ContainerRegistryImage":                                 {Class: "EC2ContainerRegistryImage", Category: "Compute"},
	"EC2ContainerRegistryRegistry":                              {Class: "EC2ContainerRegistryRegistry", Category: "Compute"},
	"EC2ContainerRegistry":                                      {Class: "EC2ContainerRegistry", Category: "Compute"},
	"ECR":                                                       {Class: "EC2ContainerRegistry", Category: "Compute"},
	"EC2ElasticIpAddress":                                       {Class: "EC2ElasticIpAddress", Category: "Compute"},
	"EC2ImageBuilder":                                           {Class: "EC2ImageBuilder", Category: "Compute"},
	"EC2Instance":                                               {Class: "EC2Instance", Category: "Compute"},
	"EC2Instances":                                              {Class: "EC2Instances", Category: "Compute"},
	"EC2Rescue":                                                 {Class: "EC2Rescue", Category: "Compute"},
	"EC2SpotInstance":                                           {Class: "EC2SpotInstance", Category: "Compute"},
	"EC2":                                                       {Class: "EC2", Category: "Compute"},
	"ElasticBeanstalkApplication":                               {Class: "ElasticBeanstalkApplication", Category: "Compute"},
	"ElasticBeanstalkDeployment":                                {Class: "ElasticBeanstalkDeployment", Category: "Compute"},
	"ElasticBeanstalk":                                          {Class: "ElasticBeanstalk", Category: "Compute"},
	"EB":                                                        {Class: "ElasticBeanstalk", Category: "Compute"},
	"ElasticContainerServiceContainer":                          {Class: "ElasticContainerServiceContainer", Category: "Compute"},
	"ElasticContainerServiceService":                            {Class: "ElasticContainerServiceService", Category: "Compute"},
	"ElasticContainerService":                                   {Class: "ElasticContainerService", Category: "Compute"},
	"ECS":                                                       {Class: "ElasticContainerService", Category: "Compute"},
	"ElasticKubernetesService":                                  {Class: "ElasticKubernetesService", Category: "Compute"},
	"EKS":                                                       {Class: "ElasticKubernetesService", Category: "Compute"},
	"Fargate":                                                   {Class: "Fargate", Category: "Compute"},
	"LambdaFunction":                                            {Class: "LambdaFunction", Category: "Compute"},
	"Lambda":                                                    {Class: "Lambda", Category: "Compute"},
	"Lightsail":                                                 {Class: "Lightsail", Category: "Compute"},
	"LocalZones":                                                {Class: "LocalZones", Category: "Compute"},
	"Outposts":                                                  {Class: "Outposts", Category: "Compute"},
	"ServerlessApplicationRepository":                           {Class: "ServerlessApplicationRepository", Category: "Compute"},
	"SAR":                                                       {Class: "ServerlessApplicationRepository", Category: "Compute"},
	"ThinkboxDeadline":                                          {Class: "ThinkboxDeadline", Category: "Thinkbox Suite"},
	"ThinkboxDraft":                                             {Class: "ThinkboxDraft", Category: "Thinkbox Suite"},
	"ThinkboxFrost":                                             {Class: "ThinkboxFrost", Category: "Thinkbox Suite"},
	"ThinkboxKrakatoa":                                          {Class: "ThinkboxKrakatoa", Category: "Thinkbox Suite"},
	"ThinkboxSequoia":                                           {Class: "ThinkboxSequoia", Category: "Thinkbox Suite"},
	"ThinkboxStoke":                                             {Class: "ThinkboxStoke", Category: "Thinkbox Suite"},
	"ThinkboxXmesh":                                             {Class: "ThinkboxXmesh", Category: "Thinkbox Suite"},
	"VmwareCloudOnAWS":                                          {Class: "VmwareCloudOnAWS", Category: "Thinkbox Suite"},
	"Wavelength":                                                {Class: "Wavelength", Category: "Thinkbox Suite"},
	"Budgets":                                                   {Class: "Budgets", Category: "Cost"},
	"CostAndUsageReport":                                        {Class: "CostAndUsageReport", Category: "Cost"},
	"CostExplorer":                                              {Class: "CostExplorer", Category: "Cost"},
	"CostManagement":                                            {Class: "CostManagement", Category: "Cost"},
	"ReservedInstanceReporting":                                 {Class: "ReservedInstanceReporting", Category: "Cost"},
	"SavingsPlans":                                              {Class: "SavingsPlans", Category: "Cost"},
	"AuroraInstance":                                            {Class: "AuroraInstance", Category: "Database"},
	"Aurora":                                                    {Class: "Aurora", Category: "Database"},
	"DatabaseMigrationServiceDatabaseMigrationWorkflow":         {Class: "DatabaseMigrationServiceDatabaseMigrationWorkflow", Category: "Database"},
	"DatabaseMigrationService":                                  {Class: "DatabaseMigrationService", Category: "Database"},
	"Database":                                                  {Class: "Database", Category: "Database"},
	"DocumentdbMongodbCompatibility":                            {Class: "DocumentdbMongodbCompatibility", Category: "Database"},
	"DynamodbAttribute":                                         {Class: "DynamodbAttribute", Category: "Database"},
	"DynamodbAttributes":                                        {Class: "DynamodbAttributes", Category: "Database"},
	"DynamodbDax":                                               {Class: "DynamodbDax", Category: "Database"},
	"DynamodbGlobalSecondaryIndex":                              {Class: "DynamodbGlobalSecondaryIndex", Category: "Database"},
	"DynamodbItem":                                              {Class: "DynamodbItem", Category: "Database"},
	"DynamodbItems":                                             {Class: "DynamodbItems", Category: "Database"},
	"DynamodbStreams":                                           {Class: "DynamodbStreams", Category: "Database"},
	"DynamodbTable":                                             {Class: "DynamodbTable", Category: "Database"},
	"Dynamodb":                                                  {Class: "Dynamodb", Category: "Database"},
	"ElasticacheCacheNode":                                      {Class: "ElasticacheCacheNode", Category: "Database"},
	"ElasticacheForMemcached":                                   {Class: "ElasticacheForMemcached", Category: "Database"},
	"ElasticacheForRedis":                                       {Class: "ElasticacheForRedis", Category: "Database"},
	"Elasticache":                                               {Class: "Elasticache", Category: "Database"},
	"KeyspacesManagedApacheCassandraService":                    {Class: "KeyspacesManagedApacheCassandraService", Category: "Database"},
	"Neptune":                                                   {Class: "Neptune", Category: "Database"},
	"RDSInstance":                                               {Class: "RDSInstance", Category: "Database"},
	"RDSMariadbInstance":                                        {Class: "RDSMariadbInstance", Category: "Database"},
	"RDSMysqlInstance":                                          {Class: "RDSMysqlInstance", Category: "Database"},
	"RDSOnVmware":                                               {Class: "RDSOnVmware", Category: "Database"},
	"RDSOracleInstance":                                         {Class: "RDSOracleInstance", Category: "Database"},
	"RDSPostgresqlInstance":                                     {Class: "RDSPostgresqlInstance", Category: "Database"},
	"RDSSqlServerInstance":                                      {Class: "RDSSqlServerInstance", Category: "Database"},
	"RDS":                                                       {Class: "RDS", Category: "Database"},
	"Timestream":                                                {Class: "Timestream", Category: "Database"},
	"CloudDevelopmentKit":                                       {Class: "CloudDevelopmentKit", Category: "DevTools"},
	"Cloud9Resource":                                            {Class: "Cloud9Resource", Category: "DevTools"},
	"Cloud9":                                                    {Class: "Cloud9", Category: "DevTools"},
	"Codeartifact":                                              {Class: "Codeartifact", Category: "DevTools"},
	"Codebuild":                                                 {Class: "Codebuild", Category: "DevTools"},
	"Codecommit":                                                {Class: "Codecommit", Category: "DevTools"},
	"Codedeploy":                                                {Class: "Codedeploy", Category: "DevTools"},
	"Codepipeline":                                              {Class: "Codepipeline", Category: "DevTools"},
	"Codestar":                                                  {Class: "Codestar", Category: "DevTools"},
	"CommandLineInterface":                                      {Class: "CommandLineInterface", Category: "DevTools"},
	"DeveloperTools":                                            {Class: "DeveloperTools", Category: "DevTools"},
	"ToolsAndSdks":                                              {Class: "ToolsAndSdks", Category: "DevTools"},
	"XRay":                                                      {Class: "XRay", Category: "DevTools"},
	"CustomerEnablement":                                        {Class: "CustomerEnablement", Category: "Enablement"},
	"Iq":                                                        {Class: "Iq", Category: "Enablement"},
	"ManagedServices":                                           {Class: "ManagedServices", Category: "Enablement"},
	"ProfessionalServices":                                      {Class: "ProfessionalServices", Category: "Enablement"},
	"Support":                                                   {Class: "Support", Category: "Enablement"},
	"Appstream20":                                               {Class: "Appstream20", Category: "End User Computing"},
	"DesktopAndAppStreaming":                                    {Class: "DesktopAndAppStreaming", Category: "End User Computing"},
	"Workdocs":                                                  {Class: "Workdocs", Category: "End User Computing"},
	"Worklink":                                                  {Class: "Worklink", Category: "End User Computing"},
	"Workspaces":                                                {Class: "Workspaces", Category: "End User Computing"},
	"Connect":                                                   {Class: "Connect", Category: "Customer Engagement"},
	"CustomerEngagement":                                        {Class: "CustomerEngagement", Category: "Customer Engagement"},
	"Pinpoint":                                                  {Class: "Pinpoint", Category: "Customer Engagement"},
	"SimpleEmailServiceSesEmail":                                {Class: "SimpleEmailServiceSesEmail", Category: "Customer Engagement"},
	"SimpleEmailServiceSes":                                     {Class: "SimpleEmailServiceSes", Category: "Customer Engagement"},
	"GameTech":                                                  {Class: "GameTech", Category: "Game Tech"},
	"Gamelift":                                                  {Class: "Gamelift", Category: "Game Tech"},
	"Client":                                                    {Class: "Client", Category: "General"},
	"Disk":                                                      {Class: "Disk", Category: "General"},
	"Forums":                                                    {Class: "Forums", Category: "General"},
	"General":                                                   {Class: "General", Category: "General"},
	"GenericDatabase":                                           {Class: "GenericDatabase", Category: "General"},
	"GenericFirewall":                                           {Class: "GenericFirewall", Category: "General"},
	"GenericOfficeBuilding":                                     {Class: "GenericOfficeBuilding", Category: "General"},
	"GenericSamlToken":                                          {Class: "GenericSamlToken", Category: "General"},
	"GenericSDK":                                                {Class: "GenericSDK", Category: "General"},
	"InternetAlt1":                                              {Class: "InternetAlt1", Category: "General"},
	"InternetAlt2":                                              {Class: "InternetAlt2", Category: "General"},
	"InternetGateway":                                           {Class: "InternetGateway", Category: "General"},
	"Marketplace":                                               {Class: "Marketplace", Category: "General"},
	"MobileClient":                                              {Class: "MobileClient", Category: "General"},
	"Multimedia":                                                {Class: "Multimedia", Category: "General"},
	"OfficeBuilding":                                            {Class: "OfficeBuilding", Category: "General"},
	"SamlToken":                                                 {Class: "SamlToken", Category: "General"},
	"SDK":                                                       {Class: "SDK", Category: "General"},
	"SslPadlock":                                                {Class: "SslPadlock", Category: "General"},
	"TapeStorage":                                               {Class: "TapeStorage", Category: "General"},
	"Toolkit":                                                   {Class: "Toolkit", Category: "General"},
	"TraditionalServer":                                         {Class: "TraditionalServer", Category: "General"},
	"User":                                                      {Class: "User", Category: "General"},
	"Users":                                                     {Class: "Users", Category: "General"},
	"ApplicationIntegration":                                    {Class: "ApplicationIntegration", Category: "Integration"},
	"Appsync":                                                   {Class: "Appsync", Category: "Integration"},
	"ConsoleMobileApplication":                                  {Class: "ConsoleMobileApplication", Category: "Integration"},
	"EventResource":                                             {Class: "EventResource", Category: "Integration"},
	"EventbridgeCustomEventBusResource":                         {Class: "EventbridgeCustomEventBusResource", Category: "Integration"},
	"EventbridgeDefaultEventBusResource":                        {Class: "EventbridgeDefaultEventBusResource", Category: "Integration"},
	"EventbridgeSaasPartnerEventBusResource":                    {Class: "EventbridgeSaasPartnerEventBusResource", Category: "Integration"},
	"Eventbridge":                                               {Class: "Eventbridge", Category: "Integration"},
	"ExpressWorkflows":                                          {Class: "ExpressWorkflows", Category: "Integration"},
	"MQ":                                                        {Class: "MQ", Category: "Integration"},
	"SimpleNotificationServiceSnsEmailNotification":             {Class: "SimpleNotificationServiceSnsEmailNotification", Category: "Integration"},
	"SimpleNotificationServiceSnsHttpNotification":              {Class: "SimpleNotificationServiceSnsHttpNotification", Category: "Integration"},
	"SimpleNotificationServiceSnsTopic":                         {Class: "SimpleNotificationServiceSnsTopic", Category: "Integration"},
	"SimpleNotificationServiceSns":                              {Class: "SimpleNotificationServiceSns", Category: "Integration"},
	"SimpleQueueServiceSqsMessage":                              {Class: "SimpleQueueServiceSqsMessage", Category: "Integration"},
	"SimpleQueueServiceSqsQueue":                                {Class: "SimpleQueueServiceSqsQueue", Category: "Integration"},
	"SimpleQueueServiceSqs":                                     {Class: "SimpleQueueServiceSqs", Category: "Integration"},
	"StepFunctions":                                             {Class: "StepFunctions", Category: "Integration"},
	"Freertos":                                                  {Class: "Freertos", Category: "Internet of Things"},
	"InternetOfThings":                                          {Class: "InternetOfThings", Category: "Internet of Things"},
	"Iot1Click":                                                 {Class: "Iot1Click", Category: "Internet of Things"},
	"IotAction":                                                 {Class: "IotAction", Category: "Internet of Things"},
	"IotActuator":                                               {Class: "IotActuator", Category: "Internet of Things"},
	"IotAlexaEcho":                                              {Class: "IotAlexaEcho", Category: "Internet of Things"},
	"IotAlexaEnabledDevice":                                     {Class: "IotAlexaEnabledDevice", Category: "Internet of Things"},
	"IotAlexaSkill":                                             {Class: "IotAlexaSkill", Category: "Internet of Things"},
	"IotAlexaVoiceService":                                      {Class: "IotAlexaVoiceService", Category: "Internet of Things"},
	"IotAnalyticsChannel":                                       {Class: "IotAnalyticsChannel", Category: "Internet of Things"},
	"IotAnalyticsDataSet":                                       {Class: "IotAnalyticsDataSet", Category: "Internet of Things"},
	"IotAnalyticsDataStore":                                     {Class: "IotAnalyticsDataStore", Category: "Internet of Things"},
	"IotAnalyticsNotebook":                                      {Class: "IotAnalyticsNotebook", Category: "Internet of Things"},
	"IotAnalyticsPipeline":                                      {Class: "IotAnalyticsPipeline", Category: "Internet of Things"},
	"IotAnalytics":                                              {Class: "IotAnalytics", Category: "Internet of Things"},
	"IotBank":                                                   {Class: "IotBank", Category: "Internet of Things"},
	"IotBicycle":                                                {Class: "IotBicycle", Category: "Internet of Things"},
	"IotButton":                                                 {Class: "IotButton", Category: "Internet of Things"},
	"IotCamera":                                                 {Class: "IotCamera", Category: "Internet of Things"},
	"IotCar":                                                    {Class: "IotCar", Category: "Internet of Things"},
	"IotCart":                                                   {Class: "IotCart", Category: "Internet of Things"},
	"IotCertificate":                                            {Class: "IotCertificate", Category: "Internet of Things"},
	"IotCoffeePot":                                              {Class: "IotCoffeePot", Category: "Internet of Things"},
	"IotCore":                                                   {Class: "IotCore", Category: "Internet of Things"},
	"IotDesiredState":                                           {Class: "IotDesiredState", Category: "Internet of Things"},
	"IotDeviceDefender":                                         {Class: "IotDeviceDefender", Category: "Internet of Things"},
	"IotDeviceGateway":                                          {Class: "IotDeviceGateway", Category: "Internet of Things"},
	"IotDeviceManagement":                                       {Class: "IotDeviceManagement", Category: "Internet of Things"},
	"IotDoorLock":                                               {Class: "IotDoorLock", Category: "Internet of Things"},
	"IotEvents":                                                 {Class: "IotEvents", Category: "Internet of Things"},
	"IotFactory":                                                {Class: "IotFactory", Category: "Internet of Things"},
	"IotFireTvStick":                                            {Class: "IotFireTvStick", Category: "Internet of Things"},
	"IotFireTv":                                                 {Class: "IotFireTv", Category: "Internet of Things"},
	"IotGeneric":                                                {Class: "IotGeneric", Category: "Internet of Things"},
	"IotGreengrassConnector":                                    {Class: "IotGreengrassConnector", Category: "Internet of Things"},
	"IotGreengrass":                                             {Class: "IotGreengrass", Category: "Internet of Things"},
	"IotHardwareBoard":                                          {Class: "IotHardwareBoard", Category: "Internet of Things"},
	"IotHouse":                                                  {Class: "IotHouse", Category: "Internet of Things"},
	"IotHttp":                                                   {Class: "IotHttp", Category: "Internet of Things"},
	"IotHttp2":                                                  {Class: "IotHttp2", Category: "Internet of Things"},
	"IotJobs":                                                   {Class: "IotJobs", Category: "Internet of Things"},
	"IotLambda":                                                 {Class: "IotLambda", Category: "Internet of Things"},
	"IotLightbulb":                                              {Class: "IotLightbulb", Category: "Internet of Things"},
	"IotMedicalEmergency":                                       {Class: "IotMedicalEmergency", Category: "Internet of Things"},
	"IotMqtt":                                                   {Class: "IotMqtt", Category: "Internet of Things"},
	"IotOverTheAirUpdate":                                       {Class: "IotOverTheAirUpdate", Category: "Internet of Things"},
	"IotPolicyEmergency":                                        {Class: "IotPolicyEmergency", Category: "Internet of Things"},
	"IotPolicy":                                                 {Class: "IotPolicy", Category: "Internet of Things"},
	"IotReportedState":                                          {Class: "IotReportedState", Category: "Internet of Things"},
	"IotRule":                                                   {Class: "IotRule", Category: "Internet of Things"},
	"IotSensor":                                                 {Class: "IotSensor", Category: "Internet of Things"},
	"IotServo":                                                  {Class: "IotServo", Category: "Internet of Things"},
	"IotShadow":                                                 {Class: "IotShadow", Category: "Internet of Things"},
	"IotSimulator":                                              {Class: "IotSimulator", Category: "Internet of Things"},
	"IotSitewise":                                               {Class: "IotSitewise", Category: "Internet of Things"},
	"IotThermostat":                                             {Class: "IotThermostat", Category: "Internet of Things"},
	"IotThingsGraph":                                            {Class: "IotThingsGraph", Category: "Internet of Things"},
	"IotTopic":                                                  {Class: "IotTopic", Category: "Internet of Things"},
	"IotTravel":                                                 {Class: "IotTravel", Category: "Internet of Things"},
	"IotUtility":                                                {Class: "IotUtility", Category: "Internet of Things"},
	"IotWindfarm":                                               {Class: "IotWindfarm", Category: "Internet of Things"},
	"AmazonDevopsGuru":                                          {Class: "AmazonDevopsGuru", Category: "Management"},
	"AmazonManagedGrafana":                                      {Class: "AmazonManagedGrafana", Category: "Management"},
	"AmazonManagedPrometheus":                                   {Class: "AmazonManagedPrometheus", Category: "Management"},
	"AmazonManagedWorkflowsApacheAirflow":                       {Class: "AmazonManagedWorkflowsApacheAirflow", Category: "Management"},
	"Chatbot":                                                   {Class: "Chatbot", Category: "Management"},
	"CloudformationChangeSet":                                   {Class: "CloudformationChangeSet", Category: "Management"},
	"CloudformationStack":                                       {Class: "CloudformationStack", Category: "Management"},
	"CloudformationTemplate":                                    {Class: "CloudformationTemplate", Category: "Management"},
	"Cloudformation":                                            {Class: "Cloudformation", Category: "Management"},
	"Cloudtrail":                                                {Class: "Cloudtrail", Category: "Management"},
	"CloudwatchAlarm":                                           {Class: "CloudwatchAlarm", Category: "Management"},
	"CloudwatchEventEventBased":                                 {Class: "CloudwatchEventEventBased", Category: "Management"},
	"CloudwatchEventTimeBased":                                  {Class: "CloudwatchEventTimeBased", Category: "Management"},
	"CloudwatchLogs":                                            {Class: "CloudwatchLogs", Category: "Management"},
	"Cloudwatch":                                                {Class: "Cloudwatch", Category: "Management"},
	"Codeguru":                                                  {Class: "Codeguru", Category: "Management"},
	"Config":                                                    {Class: "Config", Category: "Management"},
	"ControlTower":                                              {Class: "ControlTower", Category: "Management"},
	"LicenseManager":                                            {Class: "LicenseManager", Category: "Management"},
	"ManagementAndGovernance":                                   {Class: "ManagementAndGovernance", Category: "Management"},
	"ManagementConsole":                                         {Class: "ManagementConsole", Category: "Management"},
	"OpsworksApps":                                              {Class: "OpsworksApps", Category: "Management"},
	"OpsworksDeployments":                                       {Class: "OpsworksDeployments", Category: "Management"},
	"OpsworksInstances":                                         {Class: "OpsworksInstances", Category: "Management"},
	"OpsworksLayers":                                            {Class: "OpsworksLayers", Category: "Management"},
	"OpsworksMonitoring":                                        {Class: "OpsworksMonitoring", Category: "Management"},
	"OpsworksPermissions":                                       {Class: "OpsworksPermissions", Category: "Management"},
	"OpsworksResources":                                         {Class: "OpsworksResources", Category: "Management"},
	"OpsworksStack":                                             {Class: "OpsworksStack", Category: "Management"},
	"Opsworks":                                                  {Class: "Opsworks", Category: "Management"},
	"OrganizationsAccount":                                      {Class: "OrganizationsAccount", Category: "Management"},
	"OrganizationsOrganizationalUnit":                           {Class: "OrganizationsOrganizationalUnit", Category: "Management"},
	"Organizations":                                             {Class: "Organizations", Category: "Management"},
	"PersonalHealthDashboard":                                   {Class: "PersonalHealthDashboard", Category: "Management"},
	"Proton":                                                    {Class: "Proton", Category: "Management"},
	"ServiceCatalog":                                            {Class: "ServiceCatalog", Category: "Management"},
	"SystemsManagerAppConfig":                                   {Class: "SystemsManagerAppConfig", Category: "Management"},
	"SystemsManagerAutomation":                                  {Class: "SystemsManagerAutomation", Category: "Management"},
	"SystemsManagerDocuments":                                   {Class: "SystemsManagerDocuments", Category: "Management"},
	"SystemsManagerInventory":                                   {Class: "SystemsManagerInventory", Category: "Management"},
	"SystemsManagerMaintenanceWindows":                          {Class: "SystemsManagerMaintenanceWindows", Category: "Management"},
	"SystemsManagerOpscenter":                                   {Class: "SystemsManagerOpscenter", Category: "Management"},
	"SystemsManagerParameterStore":                              {Class: "SystemsManagerParameterStore", Category: "Management"},
	"SystemsManagerPatchManager":                                {Class: "SystemsManagerPatchManager", Category: "Management"},
	"SystemsManagerRunCommand":                                  {Class: "SystemsManagerRunCommand", Category: "Management"},
	"SystemsManagerStateManager":                                {Class: "SystemsManagerStateManager", Category: "Management"},
	"SystemsManager":                                            {Class: "SystemsManager", Category: "Management"},
	"TrustedAdvisorChecklistCost":                               {Class: "TrustedAdvisorChecklistCost", Category: "Management"},
	"TrustedAdvisorChecklistFaultTolerant":                      {Class: "TrustedAdvisorChecklistFaultTolerant", Category: "Management"},
	"TrustedAdvisorChecklistPerformance":                        {Class: "TrustedAdvisorChecklistPerformance", Category: "Management"},
	"TrustedAdvisorChecklistSecurity":                           {Class: "TrustedAdvisorChecklistSecurity", Category: "Management"},
	"TrustedAdvisorChecklist":                                   {Class: "TrustedAdvisorChecklist", Category: "Management"},
	"TrustedAdvisor":                                            {Class: "TrustedAdvisor", Category: "Management"},
	"WellArchitectedTool":                                       {Class: "WellArchitectedTool", Category: "Management"},
	"ElasticTranscoder":                                         {Class: "ElasticTranscoder", Category: "Media"},
	"ElementalConductor":                                        {Class: "ElementalConductor", Category: "Media"},
	"ElementalDelta":                                            {Class: "ElementalDelta", Category: "Media"},
	"ElementalLive":                                             {Class: "ElementalLive", Category: "Media"},
	"ElementalMediaconnect":                                     {Class: "ElementalMediaconnect", Category: "Media"},
	"ElementalMediaconvert":                                     {Class: "ElementalMediaconvert", Category: "Media"},
	"ElementalMedialive":                                        {Class: "ElementalMedialive", Category: "Media"},
	"ElementalMediapackage":                                     {Class: "ElementalMediapackage", Category: "Media"},
	"ElementalMediastore":                                       {Class: "ElementalMediastore", Category: "Media"},
	"ElementalMediatailor":                                      {Class: "ElementalMediatailor", Category: "Media"},
	"ElementalServer":                                           {Class: "ElementalServer", Category: "Media"},
	"MediaServices":                                             {Class: "MediaServices", Category: "Media"},
	"ApplicationDiscoveryService":                               {Class: "ApplicationDiscoveryService", Category: "Migration"},
	"CloudendureMigration":                                      {Class: "CloudendureMigration", Category: "Migration"},
	"DatasyncAgent":                                             {Class: "DatasyncAgent", Category: "Migration"},
	"Datasync":                                                  {Class: "Datasync", Category: "Migration"},
	"MigrationAndTransfer":                                      {Class: "MigrationAndTransfer", Category: "Migration"},
	"MigrationHub":                                              {Class: "MigrationHub", Category: "Migration"},
	"ServerMigrationService":                                    {Class: "ServerMigrationService", Category: "Migration"},
	"SnowballEdge":                                              {Class: "SnowballEdge", Category: "Migration"},
	"Snowball":                                                  {Class: "Snowball", Category: "Migration"},
	"Snowmobile":                                                {Class: "Snowmobile", Category: "Migration"},
	"TransferForSftp":                                           {Class: "TransferForSftp", Category: "Migration"},
	"ApacheMxnetOnAWS":                                          {Class: "ApacheMxnetOnAWS", Category: "Machine Learning"},
	"AugmentedAi":                                               {Class: "AugmentedAi", Category: "Machine Learning"},
	"Bedrock":                                                   {Class: "Bedrock", Category: "Machine Learning"},
	"Comprehend":                                                {Class: "Comprehend", Category: "Machine Learning"},
	"DeepLearningAmis":                                          {Class: "DeepLearningAmis", Category: "Machine Learning"},
	"DeepLearningContainers":                                    {Class: "DeepLearningContainers", Category: "Machine Learning"},
	"Deepcomposer":                                              {Class: "Deepcomposer", Category: "Machine Learning"},
	"Deeplens":                                                  {Class: "Deeplens", Category: "Machine Learning"},
	"Deepracer":                                                 {Class: "Deepracer", Category: "Machine Learning"},
	"ElasticInference":                                          {Class: "ElasticInference", Category: "Machine Learning"},
	"Forecast":                                                  {Class: "Forecast", Category: "Machine Learning"},
	"FraudDetector":                                             {Class: "FraudDetector", Category: "Machine Learning"},
	"Kendra":                                                    {Class: "Kendra", Category: "Machine Learning"},
	"Lex":                                                       {Class: "Lex", Category: "Machine Learning"},
	"MachineLearning":                                           {Class: "MachineLearning", Category: "Machine Learning"},
	"Personalize":                                               {Class: "Personalize", Category: "Machine Learning"},
	"Polly":                                                     {Class: "Polly", Category: "Machine Learning"},
	"RekognitionImage":                                          {Class: "RekognitionImage", Category: "Machine Learning"},
	"RekognitionVideo":                                          {Class: "RekognitionVideo", Category: "Machine Learning"},
	"Rekognition":                                               {Class: "Rekognition", Category: "Machine Learning"},
	"SagemakerGroundTruth":                                      {Class: "SagemakerGroundTruth", Category: "Machine Learning"},
	"SagemakerModel":                                            {Class: "SagemakerModel", Category: "Machine Learning"},
	"SagemakerNotebook":                                         {Class: "SagemakerNotebook", Category: "Machine Learning"},
	"SagemakerTrainingJob":                                      {Class: "SagemakerTrainingJob", Category: "Machine Learning"},
	"Sagemaker":                                                 {Class: "Sagemaker", Category: "Machine Learning"},
	"TensorflowOnAWS":                                           {Class: "TensorflowOnAWS", Category: "Machine Learning"},
	"Textract":                                                  {Class: "Textract", Category: "Machine Learning"},
	"Transcribe":                                                {Class: "Transcribe", Category: "Machine Learning"},
	"Translate":                                                 {Class: "Translate", Category: "Machine Learning"},
	"Amplify":                                                   {Class: "Amplify", Category: "Mobile"},
	"APIGatewayEndpoint":                                        {Class: "APIGatewayEndpoint", Category: "Mobile"},
	"APIGateway":                                                {Class: "APIGateway", Category: "Mobile"},
	"DeviceFarm":                                                {Class: "DeviceFarm", Category: "Mobile"},
	"Mobile":                                                    {Class: "Mobile", Category: "Mobile"},
	"AppMesh":                                                   {Class: "AppMesh", Category: "Network"},
	"ClientVpn":                                                 {Class: "ClientVpn", Category: "Network"},
	"CloudMap":                                                  {Class: "CloudMap", Category: "Network"},
	"CloudFrontDownloadDistribution":                            {Class: "CloudFrontDownloadDistribution", Category: "Network"},
	"CloudFrontEdgeLocation":                                    {Class: "CloudFrontEdgeLocation", Category: "Network"},
	"CloudFrontStreamingDistribution":                           {Class: "CloudFrontStreamingDistribution", Category: "Network"},
	"CloudFront":                                                {Class: "CloudFront", Category: "Network"},
	"DirectConnect":                                             {Class: "DirectConnect", Category: "Network"},
	"ElasticLoadBalancing":                                      {Class: "ElasticLoadBalancing", Category: "Network"},
	"ELB":                                                       {Class: "ElasticLoadBalancing", Category: "Network"},
	"ElbApplicationLoadBalancer":                                {Class: "ElbApplicationLoadBalancer", Category: "Network"},
	"ALB":                                                       {Class: "ElbApplicationLoadBalancer", Category: "Network"},
	"ElbClassicLoadBalancer":                                    {Class: "ElbClassicLoadBalancer", Category: "Network"},
	"ElbNetworkLoadBalancer":                                    {Class: "ElbNetworkLoadBalancer", Category: "Network"},
	"Endpoint":                                                  {Class: "Endpoint", Category: "Network"},
	"GlobalAccelerator":                                         {Class: "GlobalAccelerator", Category: "Network"},
	"Nacl":                                                      {Class: "Nacl", Category: "Network"},
	"NATGateway":                                                {Class: "NATGateway", Category: "Network"},
	"NetworkFirewall":                                           {Class: "NetworkFirewall", Category: "Network"},
	"NetworkingAndContentDelivery":                              {Class: "NetworkingAndContentDelivery", Category: "Network"},
	"PrivateSubnet":                                             {Class: "PrivateSubnet", Category: "Network"},
	"Privatelink":                                               {Class: "Privatelink", Category: "Network"},
	"PublicSubnet":                                              {Class: "PublicSubnet", Category: "Network"},
	"Route53HostedZone":                                         {Class: "Route53HostedZone", Category: "Network"},
	"Route53":                                                   {Class: "Route53", Category: "Network"},
	"RouteTable":                                                {Class: "RouteTable", Category: "Network"},
	"SiteToSiteVpn":                                             {Class: "SiteToSiteVpn", Category: "Network"},
	"TransitGatewayAttachment":                                  {Class: "TransitGatewayAttachment", Category: "Network"},
	"TransitGateway":                                            {Class: "TransitGateway", Category: "Network"},
	"VPCCustomerGateway":                                        {Class: "VPCCustomerGateway", Category: "Network"},
	"VPCElasticNetworkAdapter":                                  {Class: "VPCElasticNetworkAdapter", Category: "Network"},
	"VPCElasticNetworkInterface":                                {Class: "VPCElasticNetworkInterface", Category: "Network"},
	"VPCFlowLogs":                                               {Class: "VPCFlowLogs", Category: "Network"},
	"VPCPeering":                                                {Class: "VPCPeering", Category: "Network"},
	"VPCRouter":                                                 {Class: "VPCRouter", Category: "Network"},
	"VPCTrafficMirroring":                                       {Class: "VPCTrafficMirroring", Category: "Network"},
	"VPC":                                                       {Class: "VPC", Category: "Network"},
	"VpnConnection":                                             {Class: "VpnConnection", Category: "Network"},
	"VpnGateway":                                                {Class: "VpnGateway", Category: "Network"},
	"Braket":                                                    {Class: "Braket", Category: "Quantum"},
	"QuantumTechnologies":                                       {Class: "QuantumTechnologies", Category: "Quantum"},
	"RobomakerCloudExtensionRos":                                {Class: "RobomakerCloudExtensionRos", Category: "Robotics"},
	"RobomakerDevelopmentEnvironment":                           {Class: "RobomakerDevelopmentEnvironment", Category: "Robotics"},
	"RobomakerFleetManagement":                                  {Class: "RobomakerFleetManagement", Category: "Robotics"},
	"RobomakerSimulator":                                        {Class: "RobomakerSimulator", Category: "Robotics"},
	"Robomaker":                                                 {Class: "Robomaker", Category: "Robotics"},
	"Robotics":                                                  {Class: "Robotics", Category: "Robotics"},
	"GroundStation":                                             {Class: "GroundStation", Category: "Satellite"},
	"Satellite":                                                 {Class: "Satellite", Category: "Satellite"},
	"AdConnector":                                               {Class: "AdConnector", Category: "Security"},
	"Artifact":                                                  {Class: "Artifact", Category: "Security"},
	"CertificateAuthority":                                      {Class: "CertificateAuthority", Category: "Security"},
	"CertificateManager":                                        {Class: "CertificateManager", Category: "Security"},
	"CloudDirectory":                                            {Class: "CloudDirectory", Category: "Security"},
	"Cloudhsm":                                                  {Class: "Cloudhsm", Category: "Security"},
	"Cognito":                                                   {Class: "Cognito", Category: "Security"},
	"Detective":                                                 {Class: "Detective", Category: "Security"},
	"DirectoryService":                                          {Class: "DirectoryService", Category: "Security"},
	"FirewallManager":                                           {Class: "FirewallManager", Category: "Security"},
	"Guardduty":                                                 {Class: "Guardduty", Category: "Security"},
	"IdentityAndAccessManagementIamAccessAnalyzer":              {Class: "IdentityAndAccessManagementIamAccessAnalyzer", Category: "Security"},
	"IdentityAndAccessManagementIamAddOn":                       {Class: "IdentityAndAccessManagementIamAddOn", Category: "Security"},
	"IdentityAndAccessManagementIamAWSStsAlternate":             {Class: "IdentityAndAccessManagementIamAWSStsAlternate", Category: "Security"},
	"IdentityAndAccessManagementIamAWSSts":                      {Class: "IdentityAndAccessManagementIamAWSSts", Category: "Security"},
	"IdentityAndAccessManagementIamDataEncryptionKey":           {Class: "IdentityAndAccessManagementIamDataEncryptionKey", Category: "Security"},
	"IdentityAndAccessManagementIamEncryptedData":               {Class: "IdentityAndAccessManagementIamEncryptedData", Category: "Security"},
	"IdentityAndAccessManagementIamLongTermSecurityCredential":  {Class: "IdentityAndAccessManagementIamLongTermSecurityCredential", Category: "Security"},
	"IdentityAndAccessManagementIamMfaToken":                    {Class: "IdentityAndAccessManagementIamMfaToken", Category: "Security"},
	"IdentityAndAccessManagementIamPermissions":                 {Class: "IdentityAndAccessManagementIamPermissions", Category: "Security"},
	"IdentityAndAccessManagementIamRole":                        {Class: "IdentityAndAccessManagementIamRole", Category: "Security"},
	"IdentityAndAccessManagementIamTemporarySecurityCredential": {Class: "IdentityAndAccessManagementIamTemporarySecurityCredential", Category: "Security"},
	"IdentityAndAccessManagementIam":                            {Class: "IdentityAndAccessManagementIam", Category: "Security"},
	"InspectorAgent":                                            {Class: "InspectorAgent", Category: "Security"},
	"Inspector":                                                 {Class: "Inspector", Category: "Security"},
	"KeyManagementService":                                      {Class: "KeyManagementService", Category: "Security"},
	"Macie":                                                     {Class: "Macie", Category: "Security"},
	"ManagedMicrosoftAd":                                        {Class: "ManagedMicrosoftAd", Category: "Security"},
	"ResourceAccessManager":                                     {Class: "ResourceAccessManager", Category: "Security"},
	"SecretsManager":                                            {Class: "SecretsManager", Category: "Security"},
	"SecurityHubFinding":                                        {Class: "SecurityHubFinding", Category: "Security"},
	"SecurityHub":                                               {Class: "SecurityHub", Category: "Security"},
	"SecurityIdentityAndCompliance":                             {Class: "SecurityIdentityAndCompliance", Category: "Security"},
	"ShieldAdvanced":                                            {Class: "ShieldAdvanced", Category: "Security"},
	"Shield":                                                    {Class: "Shield", Category: "Security"},
	"SimpleAd":                                                  {Class: "SimpleAd", Category: "Security"},
	"SingleSignOn":                                              {Class: "SingleSignOn", Category: "Security"},
	"WAFFilteringRule":                                          {Class: "WAFFilteringRule", Category: "Security"},
	"WAF":                                                       {Class: "WAF", Category: "Security"},
	"Backup":                                                    {Class: "Backup", Category: "Storage"},
	"CloudendureDisasterRecovery":                               {Class: "CloudendureDisasterRecovery", Category: "Storage"},
	"EFSInfrequentaccessPrimaryBg":                              {Class: "EFSInfrequentaccessPrimaryBg", Category: "Storage"},
	"EFSStandardPrimaryBg":                                      {Class: "EFSStandardPrimaryBg", Category: "Storage"},
	"ElasticBlockStoreEBSSnapshot":                              {Class: "ElasticBlockStoreEBSSnapshot", Category: "Storage"},
	"ElasticBlockStoreEBSVolume":                                {Class: "ElasticBlockStoreEBSVolume", Category: "Storage"},
	"ElasticBlockStoreEBS":                                      {Class: "ElasticBlockStoreEBS", Category: "Storage"},
	"ElasticFileSystemEFSFileSystem":                            {Class: "ElasticFileSystemEFSFileSystem", Category: "Storage"},
	"ElasticFileSystemEFS":                                      {Class: "ElasticFileSystemEFS", Category: "Storage"},
	"FsxForLustre":                                              {Class: "FsxForLustre", Category: "Storage"},
	"FsxForWindowsFileServer":                                   {Class: "FsxForWindowsFileServer", Category: "Storage"},
	"Fsx":                                                       {Class: "Fsx", Category: "Storage"},
	"MultipleVolumesResource":                                   {Class: "MultipleVolumesResource", Category: "Storage"},
	"S3AccessPoints":                                            {Class: "S3AccessPoints", Category: "Storage"},
	"S3GlacierArchive":                                          {Class: "S3GlacierArchive", Category: "Storage"},
	"S3GlacierVault":                                            {Class: "S3GlacierVault", Category: "Storage"},
	"S3Glacier":                                                 {Class: "S3Glacier", Category: "Storage"},
	"S3ObjectLambdaAccessPoints":                                {Class: "S3ObjectLambdaAccessPoints", Category: "Storage"},
	"SimpleStorageServiceS3BucketWithObjects":                   {Class: "SimpleStorageServiceS3BucketWithObjects", Category: "Storage"},
	"SimpleStorageServiceS3Bucket":                              {Class: "SimpleStorageServiceS3Bucket", Category: "Storage"},
	"SimpleStorageServiceS3Object":                              {Class: "SimpleStorageServiceS3Object", Category: "Storage"},
	"SimpleStorageServiceS3":                                    {Class: "SimpleStorageServiceS3", Category: "Storage"},
	"SnowFamilySnowballImportExport":                            {Class: "SnowFamilySnowballImportExport", Category: "Storage"},
	"StorageGatewayCachedVolume":                                {Class: "StorageGatewayCachedVolume", Category: "Storage"},
	"StorageGatewayNonCachedVolume":                             {Class: "StorageGatewayNonCachedVolume", Category: "Storage"},
	"StorageGatewayVirtualTapeLibrary":                          {Class: "StorageGatewayVirtualTapeLibrary", Category: "Storage"},
	"StorageGateway":                                            {Class: "StorageGateway", Category: "Storage"},
	"Storage":                                                   {Class: "Storage", Category: "Storage"},
}
