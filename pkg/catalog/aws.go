/*
 * Copyright 2025 Carver Automation Corporation.
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 *     http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package catalog

// AWSServices is the complete AWS service list, organized by category and
// matching the discovery collector registry.
var AWSServices = []Definition{
	// Storage
	{Service: "s3", DisplayName: "S3 (Simple Storage Service)", Category: "storage", Description: "Object storage for data storage and retrieval"},
	{Service: "efs", DisplayName: "EFS (Elastic File System)", Category: "storage", Description: "Fully managed elastic NFS file system"},
	{Service: "fsx", DisplayName: "FSx", Category: "storage", Description: "Fully managed file systems (Windows, Lustre, ONTAP, OpenZFS)"},
	{Service: "glacier", DisplayName: "S3 Glacier", Category: "storage", Description: "Low-cost archive storage"},
	{Service: "backup", DisplayName: "AWS Backup", Category: "storage", Description: "Centralized backup service"},
	{Service: "storagegateway", DisplayName: "Storage Gateway", Category: "storage", Description: "Hybrid cloud storage integration"},
	{Service: "transfer", DisplayName: "Transfer Family", Category: "storage", Description: "SFTP, FTPS, and FTP transfers to S3"},
	{Service: "dlm", DisplayName: "Data Lifecycle Manager", Category: "storage", Description: "Automated EBS snapshot and AMI management"},
	{Service: "ecr", DisplayName: "ECR (Container Registry)", Category: "storage", Description: "Docker container image registry"},

	// Database
	{Service: "dynamodb", DisplayName: "DynamoDB", Category: "database", Description: "Fully managed NoSQL database"},
	{Service: "rds", DisplayName: "RDS (Relational Database Service)", Category: "database", Description: "Managed relational databases"},
	{Service: "documentdb", DisplayName: "DocumentDB", Category: "database", Description: "MongoDB-compatible document database"},
	{Service: "neptune", DisplayName: "Neptune", Category: "database", Description: "Fully managed graph database"},
	{Service: "redshift", DisplayName: "Redshift", Category: "database", Description: "Data warehouse service"},
	{Service: "elasticache", DisplayName: "ElastiCache", Category: "database", Description: "In-memory caching (Redis, Memcached)"},
	{Service: "memorydb", DisplayName: "MemoryDB", Category: "database", Description: "Redis-compatible in-memory database"},
	{Service: "dax", DisplayName: "DAX (DynamoDB Accelerator)", Category: "database", Description: "In-memory cache for DynamoDB"},
	{Service: "dms", DisplayName: "DMS (Database Migration Service)", Category: "database", Description: "Database migration and replication"},

	// Compute
	{Service: "ec2", DisplayName: "EC2 (Elastic Compute Cloud)", Category: "compute", Description: "Virtual servers in the cloud"},
	{Service: "lambda", DisplayName: "Lambda", Category: "compute", Description: "Serverless compute service"},
	{Service: "ecs", DisplayName: "ECS (Elastic Container Service)", Category: "compute", Description: "Docker container orchestration"},
	{Service: "eks", DisplayName: "EKS (Elastic Kubernetes Service)", Category: "compute", Description: "Managed Kubernetes service"},
	{Service: "elasticbeanstalk", DisplayName: "Elastic Beanstalk", Category: "compute", Description: "Application deployment platform"},
	{Service: "apprunner", DisplayName: "App Runner", Category: "compute", Description: "Containerized web app deployment"},
	{Service: "autoscaling", DisplayName: "Auto Scaling", Category: "compute", Description: "Automatic scaling for EC2"},
	{Service: "emr", DisplayName: "EMR (Elastic MapReduce)", Category: "compute", Description: "Big data processing framework"},
	{Service: "appstream", DisplayName: "AppStream 2.0", Category: "compute", Description: "Application streaming service"},
	{Service: "workspaces", DisplayName: "WorkSpaces", Category: "compute", Description: "Virtual desktops in the cloud"},

	// Security
	{Service: "iam", DisplayName: "IAM (Identity and Access Management)", Category: "security", Description: "Access control and identity management"},
	{Service: "guardduty", DisplayName: "GuardDuty", Category: "security", Description: "Intelligent threat detection"},
	{Service: "securityhub", DisplayName: "Security Hub", Category: "security", Description: "Security and compliance center"},
	{Service: "macie", DisplayName: "Macie", Category: "security", Description: "Sensitive data discovery"},
	{Service: "inspector", DisplayName: "Inspector", Category: "security", Description: "Automated security assessment"},
	{Service: "waf", DisplayName: "WAF (Web Application Firewall)", Category: "security", Description: "Web application firewall"},
	{Service: "shield", DisplayName: "Shield", Category: "security", Description: "DDoS protection"},
	{Service: "config", DisplayName: "AWS Config", Category: "security", Description: "Resource configuration tracking"},
	{Service: "kms", DisplayName: "KMS (Key Management Service)", Category: "security", Description: "Encryption key management"},
	{Service: "secretsmanager", DisplayName: "Secrets Manager", Category: "security", Description: "Secrets rotation and management"},
	{Service: "accessanalyzer", DisplayName: "IAM Access Analyzer", Category: "security", Description: "Resource access analysis"},
	{Service: "acm", DisplayName: "ACM (Certificate Manager)", Category: "security", Description: "SSL/TLS certificate management"},
	{Service: "cognito", DisplayName: "Cognito", Category: "security", Description: "User authentication and authorization"},
	{Service: "fms", DisplayName: "Firewall Manager", Category: "security", Description: "Central firewall rule management"},
	{Service: "networkfirewall", DisplayName: "Network Firewall", Category: "security", Description: "Managed network firewall"},

	// Networking
	{Service: "vpc", DisplayName: "VPC (Virtual Private Cloud)", Category: "networking", Description: "Isolated cloud network"},
	{Service: "elb", DisplayName: "ELB Classic", Category: "networking", Description: "Classic load balancer"},
	{Service: "elbv2", DisplayName: "ELB v2 (ALB/NLB)", Category: "networking", Description: "Application and network load balancers"},
	{Service: "route53", DisplayName: "Route 53", Category: "networking", Description: "DNS and domain management"},
	{Service: "cloudfront", DisplayName: "CloudFront", Category: "networking", Description: "Content delivery network (CDN)"},
	{Service: "directconnect", DisplayName: "Direct Connect", Category: "networking", Description: "Dedicated network connection"},
	{Service: "globalaccelerator", DisplayName: "Global Accelerator", Category: "networking", Description: "Global network performance optimization"},
	{Service: "apigatewayv2", DisplayName: "API Gateway v2", Category: "networking", Description: "HTTP and WebSocket APIs"},
	{Service: "apigateway", DisplayName: "API Gateway", Category: "networking", Description: "REST API management"},

	// AI/ML
	{Service: "bedrock", DisplayName: "Bedrock", Category: "ai_ml", Description: "Foundation models for generative AI"},
	{Service: "sagemaker", DisplayName: "SageMaker", Category: "ai_ml", Description: "Machine learning platform"},
	{Service: "amazon_q", DisplayName: "Amazon Q", Category: "ai_ml", Description: "AI-powered assistant"},

	// Analytics
	{Service: "athena", DisplayName: "Athena", Category: "analytics", Description: "Interactive query service for S3"},
	{Service: "glue", DisplayName: "Glue", Category: "analytics", Description: "ETL and data catalog service"},
	{Service: "kinesis", DisplayName: "Kinesis Data Streams", Category: "analytics", Description: "Real-time data streaming"},
	{Service: "firehose", DisplayName: "Kinesis Firehose", Category: "analytics", Description: "Data delivery to destinations"},
	{Service: "opensearch", DisplayName: "OpenSearch", Category: "analytics", Description: "Search and analytics engine"},
	{Service: "lakeformation", DisplayName: "Lake Formation", Category: "analytics", Description: "Data lake management"},
	{Service: "msk", DisplayName: "MSK (Managed Streaming for Kafka)", Category: "analytics", Description: "Managed Apache Kafka"},

	// Integration / messaging
	{Service: "sns", DisplayName: "SNS (Simple Notification Service)", Category: "integration", Description: "Pub/sub messaging"},
	{Service: "sqs", DisplayName: "SQS (Simple Queue Service)", Category: "integration", Description: "Message queuing"},
	{Service: "ses", DisplayName: "SES (Simple Email Service)", Category: "integration", Description: "Email sending and receiving"},
	{Service: "eventbridge", DisplayName: "EventBridge", Category: "integration", Description: "Serverless event bus"},
	{Service: "stepfunctions", DisplayName: "Step Functions", Category: "integration", Description: "Workflow orchestration"},
	{Service: "mq", DisplayName: "Amazon MQ", Category: "integration", Description: "Managed message broker"},
	{Service: "appsync", DisplayName: "AppSync", Category: "integration", Description: "Managed GraphQL service"},
	{Service: "amplify", DisplayName: "Amplify", Category: "integration", Description: "Full-stack app development"},
	{Service: "iot", DisplayName: "IoT Core", Category: "integration", Description: "IoT device connectivity"},

	// Management
	{Service: "cloudtrail", DisplayName: "CloudTrail", Category: "management", Description: "AWS API logging and auditing"},
	{Service: "cloudwatch", DisplayName: "CloudWatch", Category: "management", Description: "Monitoring and observability"},
	{Service: "cloudformation", DisplayName: "CloudFormation", Category: "management", Description: "Infrastructure as code"},
	{Service: "ssm", DisplayName: "Systems Manager", Category: "management", Description: "Operations management"},
	{Service: "organizations", DisplayName: "Organizations", Category: "management", Description: "Multi-account management"},
	{Service: "ram", DisplayName: "RAM (Resource Access Manager)", Category: "management", Description: "Cross-account resource sharing"},
	{Service: "servicecatalog", DisplayName: "Service Catalog", Category: "management", Description: "IT service catalog"},
	{Service: "directoryservice", DisplayName: "Directory Service", Category: "management", Description: "Managed Active Directory"},
	{Service: "drs", DisplayName: "DRS (Disaster Recovery Service)", Category: "management", Description: "Disaster recovery"},
	{Service: "codebuild", DisplayName: "CodeBuild", Category: "management", Description: "Build service"},
	{Service: "codepipeline", DisplayName: "CodePipeline", Category: "management", Description: "CI/CD pipelines"},
	{Service: "codedeploy", DisplayName: "CodeDeploy", Category: "management", Description: "Deployment automation"},
}
